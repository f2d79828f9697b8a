package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// CompanyRepository handles company account data access
type CompanyRepository struct {
	db database.Database
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db database.Database) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company account. Returns database.ErrDuplicate if the
// email is already registered.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `
		CREATE company CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			image: $image,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":  company.Name,
		"email": company.Email,
		"hash":  company.Hash,
		"image": company.Image,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already registered", database.ErrDuplicate)
		}
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	company.ID = convertSurrealID(created["id"])
	company.CreatedOn = parseTime(created["created_on"])
	company.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves a company by ID. Returns (nil, nil) if absent.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCompany(result)
}

// GetByEmail retrieves a company by email. Returns (nil, nil) if absent.
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	query := `SELECT * FROM company WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCompany(result)
}

// GetByIDs retrieves companies for a set of ids, keyed by id.
func (r *CompanyRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Company, error) {
	companies := make(map[string]*model.Company, len(ids))
	if len(ids) == 0 {
		return companies, nil
	}

	records := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		records = append(records, id)
	}

	query := `SELECT * FROM company WHERE <string>id IN $ids`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"ids": records})
	if err != nil {
		return nil, err
	}

	for _, raw := range unwrapMany(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		company, err := parseCompanyData(data)
		if err != nil {
			return nil, err
		}
		companies[company.ID] = company
	}
	return companies, nil
}

func parseCompany(result interface{}) (*model.Company, error) {
	data, err := unwrapOne(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseCompanyData(data)
}

func parseCompanyData(data map[string]interface{}) (*model.Company, error) {
	// Extract hash before the JSON round trip (Company.Hash has json:"-")
	hash, _ := data["hash"].(string)

	var company model.Company
	if err := decodeRecord(data, &company); err != nil {
		return nil, err
	}
	company.Hash = hash
	return &company, nil
}
