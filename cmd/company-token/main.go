package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hiresphere/api/pkg/token"
)

func main() {
	// Flags for customization
	secret := flag.String("secret", os.Getenv("AUTH_SECRET"), "Signing secret (defaults to AUTH_SECRET)")
	subject := flag.String("subject", "company-dev", "Principal id for the token")
	kind := flag.String("kind", "company", "Principal kind: company or applicant")
	issuer := flag.String("issuer", "api.hiresphere.dev", "Token issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Error: signing secret is required (set AUTH_SECRET or pass -secret)")
		os.Exit(1)
	}

	principalKind := token.Kind(*kind)
	if principalKind != token.KindCompany && principalKind != token.KindApplicant {
		fmt.Fprintf(os.Stderr, "Error: unknown principal kind %q\n", *kind)
		os.Exit(1)
	}

	tokens, err := token.NewService(token.Config{
		Secret:     []byte(*secret),
		Issuer:     *issuer,
		Expiration: time.Duration(*expMins) * time.Minute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token service: %v\n", err)
		os.Exit(1)
	}

	signed, err := tokens.Sign(*subject, principalKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      signed,
			"token_type": "Bearer",
			"expires_in": *expMins * 60,
			"subject":    *subject,
			"kind":       *kind,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Dev Token Generated")
		fmt.Println("===================")
		fmt.Printf("Subject:  %s\n", *subject)
		fmt.Printf("Kind:     %s\n", *kind)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(signed)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/company/me\n", signed[:50]+"...")
	}
}
