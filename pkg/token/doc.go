// Package token provides bearer-token utilities for the HireSphere API.
//
// Tokens are HS256 JSON Web Tokens signed with a shared secret. A token
// carries the principal's identifier in the subject claim and the principal
// kind (company or applicant) in a custom claim.
//
// # Signing
//
//	service, err := token.NewService(token.Config{
//	    Secret:     []byte("secret-key"),
//	    Issuer:     "hiresphere-api",
//	    Expiration: 30 * 24 * time.Hour,
//	})
//
//	credential, err := service.Sign(companyID, token.KindCompany)
//
// # Verification
//
//	claims, err := service.Verify(credential)
//	if err != nil {
//	    // Malformed, expired, or tampered token
//	}
//	principalID := claims.Subject
package token
