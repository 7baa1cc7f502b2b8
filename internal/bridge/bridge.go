// Package bridge orchestrates one form submission end to end: validate the
// mapped entry, open a Service Layer session, create the Business Partner
// (resolving the numbering series), optionally create the Sales Quotation,
// and tear the session down. One Processor run per submission; sessions are
// never shared between runs.
package bridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gf-b1-bridge/go/internal/client"
	"github.com/gf-b1-bridge/go/internal/config"
	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/mapping"
	"github.com/gf-b1-bridge/go/internal/models"
	"github.com/gf-b1-bridge/go/internal/quotation"
	"github.com/gf-b1-bridge/go/internal/secrets"
	"github.com/gf-b1-bridge/go/internal/transport"
)

// State names the steps of a submission. A failure terminates the run; there
// is no retry transition.
type State string

const (
	StateUnvalidated            State = "unvalidated"
	StateValidated              State = "validated"
	StateAuthenticated          State = "authenticated"
	StateBusinessPartnerCreated State = "business_partner_created"
	StateQuotationCreated       State = "quotation_created"
	StateComplete               State = "complete"
	StateFailed                 State = "failed"
	StateSkipped                State = "skipped"
)

// Result is the outcome of one submission run. Err is set only when the run
// failed outright; a quotation failure after a successful partner creation is
// partial success, reported in Message with Err left nil.
type Result struct {
	SubmissionID    string
	State           State
	BusinessPartner *models.BusinessPartner
	Quotation       *models.CreatedQuotation
	Message         string
	Err             error
}

// Processor runs submissions against one configured Service Layer instance.
type Processor struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewProcessor creates a processor. Components are constructed fresh per
// submission inside ProcessSubmission; the processor itself holds no session
// state.
func NewProcessor(cfg *config.Config, log zerolog.Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

// NewClient builds a one-operation Service Layer client from the stored
// connection settings, decrypting the password immediately before use.
func (p *Processor) NewClient(log zerolog.Logger) (*client.ServiceLayerClient, error) {
	password, err := secrets.Decrypt(p.cfg.Password, p.cfg.EncryptionSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt stored password: %w", err)
	}

	adapter := transport.New(p.cfg.SSLVerify)
	return client.New(client.Credentials{
		Endpoint:  p.cfg.Endpoint,
		CompanyDB: p.cfg.CompanyDB,
		Username:  p.cfg.Username,
		Password:  password,
	}, adapter, log), nil
}

// ProcessSubmission runs the full state machine for one entry. It never
// panics or raises; the Result carries the terminal state and any error.
func (p *Processor) ProcessSubmission(ctx context.Context, formID string, entry models.Entry, form models.Form) *Result {
	res := &Result{SubmissionID: uuid.NewString(), State: StateUnvalidated}
	log := p.log.With().Str("submission_id", res.SubmissionID).Str("form_id", formID).Logger()

	settings, ok := p.cfg.FeedFor(formID)
	if !ok || !settings.Enabled {
		res.State = StateSkipped
		res.Message = constants.ErrFeedDisabled
		log.Debug().Msg("submission skipped")
		return res
	}

	if v := mapping.ValidateRequiredFields(settings, entry, form); !v.Valid {
		return p.fail(res, log, &errs.ValidationError{Target: "entry", Reason: v.Reason})
	}
	res.State = StateValidated

	sl, err := p.NewClient(log)
	if err != nil {
		return p.fail(res, log, err)
	}

	if err := sl.EnsureAuthenticated(ctx); err != nil {
		return p.fail(res, log, err)
	}
	defer sl.Logout(ctx)
	res.State = StateAuthenticated

	payload := mapping.MapEntryToBusinessPartner(settings, entry, form)
	created, err := sl.CreateBusinessPartner(ctx, payload)
	if err != nil {
		return p.fail(res, log, err)
	}
	res.State = StateBusinessPartnerCreated
	res.BusinessPartner = created

	if settings.CreateQuotation {
		doc, err := quotation.BuildFromEntry(settings, entry, form, created.CardCode)
		if err == nil {
			var qErr error
			res.Quotation, qErr = sl.CreateSalesQuotation(ctx, doc)
			err = qErr
		}
		if err != nil {
			// Partial success: the partner stays; there is no compensating
			// transaction.
			res.State = StateComplete
			res.Message = fmt.Sprintf("Business Partner %s created; quotation failed: %s", created.CardCode, err.Error())
			log.Warn().Err(err).Str("card_code", created.CardCode).Msg("quotation failed after partner creation")
			return res
		}
		res.State = StateQuotationCreated
	}

	res.State = StateComplete
	res.Message = fmt.Sprintf("Business Partner %s created", created.CardCode)
	if res.Quotation != nil {
		res.Message = fmt.Sprintf("%s; quotation %d created", res.Message, res.Quotation.DocNum)
	}
	log.Info().Str("card_code", created.CardCode).Msg("submission complete")
	return res
}

func (p *Processor) fail(res *Result, log zerolog.Logger, err error) *Result {
	res.State = StateFailed
	res.Err = err
	res.Message = err.Error()
	log.Error().Err(err).Msg("submission failed")
	return res
}
