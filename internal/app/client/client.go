package client

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"cobros/internal/app/client/config"
)

// App keeps the three collections in sync with the server. Every successful
// write reloads the affected collections; joined views are rebuilt on read.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient

	clients   *Store[Client]
	purchases *Store[Purchase]
	payments  *Store[Payment]

	mu            gosync.RWMutex
	authenticated bool
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	app := newApp(log,
		httpCl.Collection(ClientEndpoints),
		httpCl.Collection(PurchaseEndpoints),
		httpCl.Collection(PaymentEndpoints),
	)
	app.config = cfg
	app.httpClient = httpCl

	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("token loaded from file")
	}

	return app, nil
}

// NewWithRemotes builds an App over arbitrary remotes. Session operations
// are unavailable on such an App.
func NewWithRemotes(log *slog.Logger, clients, purchases, payments Remote) *App {
	return newApp(log, clients, purchases, payments)
}

func newApp(log *slog.Logger, clients, purchases, payments Remote) *App {
	return &App{
		log:       log.With("component", "app"),
		clients:   NewStore("clients", clients, NormalizeClient, clientID, log),
		purchases: NewStore("compras", purchases, NormalizePurchase, purchaseID, log),
		payments:  NewStore("abonos", payments, NormalizePayment, paymentID, log),
	}
}

// ==================== Loading ====================

func (a *App) LoadClients(ctx context.Context) error {
	return a.clients.Load(ctx)
}

// LoadPurchases loads purchases, loading clients first if they never were.
// A failed client load does not prevent the purchase load.
func (a *App) LoadPurchases(ctx context.Context) error {
	cerr := a.ensureLoaded(ctx, a.clients.Loaded, a.clients.Load)
	return errors.Join(cerr, a.purchases.Load(ctx))
}

// LoadPayments loads payments, loading clients and purchases first if they
// never were.
func (a *App) LoadPayments(ctx context.Context) error {
	cerr := a.ensureLoaded(ctx, a.clients.Loaded, a.clients.Load)
	perr := a.ensureLoaded(ctx, a.purchases.Loaded, a.purchases.Load)
	return errors.Join(cerr, perr, a.payments.Load(ctx))
}

// LoadAll reloads clients, then purchases and payments concurrently.
// One failing load does not cancel the other.
func (a *App) LoadAll(ctx context.Context) error {
	cerr := a.clients.Load(ctx)

	var g errgroup.Group
	g.Go(func() error { return a.purchases.Load(ctx) })
	g.Go(func() error { return a.payments.Load(ctx) })

	return errors.Join(cerr, g.Wait())
}

func (a *App) ensureLoaded(ctx context.Context, loaded func() bool, load func(context.Context) error) error {
	if loaded() {
		return nil
	}
	return load(ctx)
}

// ensureReferences loads whatever a payment refers to.
func (a *App) ensureReferences(ctx context.Context) error {
	if err := a.ensureLoaded(ctx, a.clients.Loaded, a.clients.Load); err != nil {
		return err
	}
	return a.ensureLoaded(ctx, a.purchases.Loaded, a.purchases.Load)
}

// ==================== Reads ====================

func (a *App) Clients() []Client {
	return a.clients.Items()
}

// Purchases returns the purchases joined with the current clients.
func (a *App) Purchases() []JoinedPurchase {
	return JoinPurchases(a.purchases.Items(), a.clients.Items())
}

// Payments returns the payments joined with the current clients and purchases.
func (a *App) Payments() []JoinedPayment {
	return JoinPayments(a.payments.Items(), a.clients.Items(), a.purchases.Items())
}

func (a *App) Client(id int) (Client, bool) {
	return a.clients.Get(id)
}

func (a *App) Purchase(id int) (JoinedPurchase, bool) {
	p, ok := a.purchases.Get(id)
	if !ok {
		return JoinedPurchase{}, false
	}
	return a.joinPurchase(p), true
}

func (a *App) Payment(id int) (JoinedPayment, bool) {
	p, ok := a.payments.Get(id)
	if !ok {
		return JoinedPayment{}, false
	}
	return a.joinPayment(p), true
}

func (a *App) joinPurchase(p Purchase) JoinedPurchase {
	return JoinedPurchase{Purchase: p, ClientName: ResolveClientName(p, a.clients.Items())}
}

func (a *App) joinPayment(p Payment) JoinedPayment {
	return JoinedPayment{
		Payment:       p,
		ClientName:    ResolveClientName(p, a.clients.Items()),
		PurchaseLabel: ResolvePurchaseLabel(p, a.purchases.Items()),
	}
}

// ==================== Clients ====================

func (a *App) CreateClient(ctx context.Context, in ClientInput) (Client, error) {
	if err := validateClientInput(in); err != nil {
		return Client{}, err
	}
	return a.clients.Create(ctx, in)
}

func (a *App) UpdateClient(ctx context.Context, id int, patch ClientPatch) (Client, error) {
	if err := validateClientPatch(patch); err != nil {
		return Client{}, err
	}
	return a.clients.Update(ctx, id, patch)
}

// DeleteClient removes a client. Purchases and payments that referenced it
// are left in place and show UnknownLabel as client name.
func (a *App) DeleteClient(ctx context.Context, id int) error {
	return a.clients.Delete(ctx, id)
}

// ==================== Purchases ====================

func (a *App) CreatePurchase(ctx context.Context, in PurchaseInput) (JoinedPurchase, error) {
	if err := a.ensureLoaded(ctx, a.clients.Loaded, a.clients.Load); err != nil {
		return JoinedPurchase{}, err
	}
	if err := validatePurchaseInput(in, a.clients); err != nil {
		return JoinedPurchase{}, err
	}

	created, err := a.purchases.Create(ctx, in)
	return a.joinPurchase(created), err
}

func (a *App) UpdatePurchase(ctx context.Context, id int, patch PurchasePatch) (JoinedPurchase, error) {
	if patch.ClientID != nil {
		if err := a.ensureLoaded(ctx, a.clients.Loaded, a.clients.Load); err != nil {
			return JoinedPurchase{}, err
		}
	}
	if err := validatePurchasePatch(patch, a.clients); err != nil {
		return JoinedPurchase{}, err
	}

	updated, err := a.purchases.Update(ctx, id, patch)
	return a.joinPurchase(updated), err
}

// DeletePurchase removes a purchase. The server removes its payments too, so
// loaded payments are reloaded as well.
func (a *App) DeletePurchase(ctx context.Context, id int) error {
	if err := a.purchases.Delete(ctx, id); err != nil {
		return err
	}

	if a.payments.Loaded() {
		if err := a.payments.Load(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrReloadFailed, err)
		}
	}
	return nil
}

// ==================== Payments ====================

func (a *App) CreatePayment(ctx context.Context, in PaymentInput) (JoinedPayment, error) {
	if err := a.ensureReferences(ctx); err != nil {
		return JoinedPayment{}, err
	}
	if err := validatePaymentInput(&in, a.purchases); err != nil {
		return JoinedPayment{}, err
	}

	created, err := a.payments.Create(ctx, in)
	return a.joinPayment(created), err
}

func (a *App) UpdatePayment(ctx context.Context, id int, patch PaymentPatch) (JoinedPayment, error) {
	if patch.PurchaseID != nil {
		if err := a.ensureReferences(ctx); err != nil {
			return JoinedPayment{}, err
		}
	}
	if err := validatePaymentPatch(&patch, a.purchases); err != nil {
		return JoinedPayment{}, err
	}

	updated, err := a.payments.Update(ctx, id, patch)
	return a.joinPayment(updated), err
}

func (a *App) DeletePayment(ctx context.Context, id int) error {
	return a.payments.Delete(ctx, id)
}
