// Package rentdesk wires the rental-management core together: session
// store, authorization gate, record stores, and the derived-data services
// the presentation layer renders. The package exposes an in-process API
// only; rendering, routing, and forms live elsewhere.
package rentdesk

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/db"
	"github.com/rentdesk/rentdesk/internal/policy"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/session"
	"github.com/rentdesk/rentdesk/internal/store"
)

// App is the assembled application core.
type App struct {
	DB       *gorm.DB
	Sessions *session.Store
	Auth     *policy.Authorizer

	Properties *store.Properties
	Tenants    *store.Tenants
	Payments   *store.Payments
	Invoices   *store.Invoices

	Dashboard *services.Dashboard
	Lists     *services.Lists

	Log *zap.Logger
}

// New opens the database, migrates and (by default) seeds it, builds the
// authorization gate and stores, and restores any persisted session.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := db.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Seed {
		if err := db.Seed(conn); err != nil {
			return nil, err
		}
	}

	authz := policy.NewAuthorizer()
	properties, err := store.NewProperties(conn, authz)
	if err != nil {
		return nil, err
	}
	tenants, err := store.NewTenants(conn, authz)
	if err != nil {
		return nil, err
	}
	payments, err := store.NewPayments(conn, authz)
	if err != nil {
		return nil, err
	}
	invoices, err := store.NewInvoices(conn, authz)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(conn, cfg.SessionFile, cfg.SessionSecret, logger)
	if id, ok := sessions.Restore(); ok {
		logger.Info("session restored", zap.String("user", id.ID), zap.String("role", string(id.Role)))
	}

	return &App{
		DB:         conn,
		Sessions:   sessions,
		Auth:       authz,
		Properties: properties,
		Tenants:    tenants,
		Payments:   payments,
		Invoices:   invoices,
		Dashboard:  services.NewDashboard(properties, tenants, payments, invoices),
		Lists:      services.NewLists(properties, tenants, payments, invoices),
		Log:        logger,
	}, nil
}

// Context returns ctx with the current session identity attached, ready to
// hand to any store or service operation.
func (a *App) Context(ctx context.Context) context.Context {
	return a.Sessions.Context(ctx)
}

// Navigation returns the navigation entries visible to the current session.
func (a *App) Navigation() []policy.NavEntry {
	id, _ := a.Sessions.Current()
	return policy.VisibleNav(id)
}
