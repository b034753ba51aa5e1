package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/infrastructure/database/postgres"
	"github.com/posbridge/brink-insights-api/internal/domain"
)

const tenantsTable = "tenants t"

type TenantRepository interface {
	GetByID(tenantID string) (*domain.Tenant, error)
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(tenantID string) (*domain.Tenant, error) {
	tenantSQL, tenantArgs, err := squirrel.
		Select("t.tenant_id, t.auth_url, t.client_id, t.client_secret, t.active").
		From(tenantsTable).
		Where(squirrel.Eq{"t.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(tenantSQL, tenantArgs...)

	tenant := &domain.Tenant{}
	if err := row.Scan(
		&tenant.TenantID,
		&tenant.AuthURL,
		&tenant.ClientID,
		&tenant.ClientSecret,
		&tenant.Active,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying tenant by id")
	}

	return tenant, nil
}
