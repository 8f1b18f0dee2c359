package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/types"
)

// Adapter loads and saves the whole document under a single key.
// Load never fails: missing or unreadable data yields the seeded default document.
type Adapter struct {
	backend         Backend
	key             string
	logger          *zap.Logger
	resetAuthOnLoad bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for fail-soft diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithResetAuthOnLoad clears the persisted authentication flag on every Load.
func WithResetAuthOnLoad(reset bool) Option {
	return func(a *Adapter) {
		a.resetAuthOnLoad = reset
	}
}

// NewAdapter creates an adapter storing the document under key.
func NewAdapter(backend Backend, key string, opts ...Option) *Adapter {
	a := &Adapter{
		backend: backend,
		key:     key,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the storage key.
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the persisted document, backfilling any absent auth, theme or
// message fields. Any read or parse failure returns DefaultDocument.
func (a *Adapter) Load(ctx context.Context) *types.Document {
	raw, ok, err := a.backend.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("failed to read persisted document, using defaults",
			zap.String("key", a.key), zap.Error(err))
		return types.DefaultDocument()
	}
	if !ok {
		a.logger.Info("no persisted document, seeding defaults", zap.String("key", a.key))
		return types.DefaultDocument()
	}

	doc, err := Decode(raw)
	if err != nil {
		a.logger.Warn("failed to parse persisted document, using defaults",
			zap.String("key", a.key), zap.Error(err))
		return types.DefaultDocument()
	}

	Backfill(doc)
	if a.resetAuthOnLoad {
		doc.IsAuthenticated = false
	}
	return doc
}

// Save writes the document. Failures are logged and otherwise ignored so
// that in-memory state keeps working when storage is unavailable.
func (a *Adapter) Save(ctx context.Context, doc *types.Document) {
	if err := a.SaveStrict(ctx, doc); err != nil {
		a.logger.Error("failed to persist document", zap.String("key", a.key), zap.Error(err))
	}
}

// SaveStrict writes the document and reports any failure.
func (a *Adapter) SaveStrict(ctx context.Context, doc *types.Document) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := a.backend.Set(ctx, a.key, data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Decode parses a serialized document. A JSON null or non-object is an error.
func Decode(raw []byte) (*types.Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("document is not a JSON object")
	}
	var doc types.Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// Backfill fills absent fields with seed defaults. A field counts as absent
// when it holds its zero value. Applying it twice gives the same result.
func Backfill(doc *types.Document) {
	if doc.AdminPassword == "" {
		doc.AdminPassword = types.DefaultAdminPassword
	}
	if doc.SecurityQuestion == "" {
		doc.SecurityQuestion = types.DefaultSecurityQuestion
	}
	if doc.SecurityAnswer == "" {
		doc.SecurityAnswer = types.DefaultSecurityAnswer
	}
	if doc.Theme.IsZero() {
		doc.Theme = types.DefaultTheme()
	}
	if doc.Messages == nil {
		doc.Messages = []types.ContactMessage{}
	}
}
