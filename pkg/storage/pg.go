package storage

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/proxy"
	"github.com/go-pg/pg"
	"github.com/go-pg/pg/orm"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/pledgesync/pkg/model"
)

type Postgres struct {
	db *pg.DB
}

func NewPG(connectionURL string, ping bool) (Postgres, error) {
	opts, err := pg.ParseURL(connectionURL)
	if err != nil {
		return Postgres{}, err
	}

	// If host format is "projection:region:host", than use Google SQL Proxy
	// See https://github.com/go-pg/pg/issues/576
	if strings.Count(opts.Addr, ":") == 2 {
		log.Info("using GCP SQL proxy")
		opts.Dialer = func(network, addr string) (net.Conn, error) {
			return proxy.Dial(addr)
		}
	}

	db := pg.Connect(opts)

	// Check database connectivity
	if ping {
		if _, err := db.ExecOne("SELECT 1"); err != nil {
			_ = db.Close()
			return Postgres{}, errors.Wrap(err, "failed to check database connectivity")
		}
	}

	return Postgres{db: db}, nil
}

// Install creates missing tables and types, it's safe to run on every start.
func (p Postgres) Install() error {
	if _, err := p.db.Exec(pgsql); err != nil {
		return errors.Wrap(err, "failed to upgrade database structure")
	}

	return nil
}

func (p Postgres) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = time.Now().UTC()
	}

	if _, err := p.db.WithContext(ctx).Model(campaign).Insert(); err != nil {
		return persistenceError("create campaign", err)
	}

	return nil
}

func (p Postgres) GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error) {
	campaign := &model.Campaign{}
	err := p.db.WithContext(ctx).Model(campaign).Where("id = ?", campaignID).Select()
	if err == pg.ErrNoRows {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, persistenceError("get campaign", err)
	}

	return campaign, nil
}

// UpdateCampaignStatus moves campaign from one status to another.
// model.ErrConflict is returned if the campaign is not in the expected status anymore.
func (p Postgres) UpdateCampaignStatus(ctx context.Context, campaignID string, from, to model.CampaignStatus) error {
	res, err := p.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Set("status = ?", to).
		Where("id = ? AND status = ?", campaignID, from).
		Update()

	if err != nil {
		return persistenceError("update campaign status", err)
	}

	if res.RowsAffected() == 0 {
		return errors.Wrapf(model.ErrConflict, "campaign %s is not %s", campaignID, from)
	}

	return nil
}

// MarkFunded flips published campaigns that reached their goal to funded.
func (p Postgres) MarkFunded(ctx context.Context) (int, error) {
	res, err := p.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Set("status = ?", model.CampaignFunded).
		Where("status = ? AND raised_amount >= goal", model.CampaignPublished).
		Update()

	if err != nil {
		return 0, persistenceError("mark funded campaigns", err)
	}

	return res.RowsAffected(), nil
}

// IncrementRaised atomically adds amount to campaign's raised amount.
func (p Postgres) IncrementRaised(ctx context.Context, campaignID string, amount decimal.Decimal) error {
	return incrementRaised(p.db.WithContext(ctx), campaignID, amount)
}

func incrementRaised(db orm.DB, campaignID string, amount decimal.Decimal) error {
	// Must stay a single UPDATE, concurrent pledges would lose updates with read-modify-write
	res, err := db.Model(&model.Campaign{}).
		Set("raised_amount = raised_amount + ?", amount).
		Where("id = ?", campaignID).
		Update()

	if err != nil {
		return persistenceError("increment raised amount", err)
	}

	if res.RowsAffected() == 0 {
		return errors.Wrapf(model.ErrNotFound, "campaign %s", campaignID)
	}

	return nil
}

// UpsertBacker inserts a backer or updates name and roles of the existing one with the same email.
// The backer is updated in place with the stored row.
func (p Postgres) UpsertBacker(ctx context.Context, backer *model.Backer) error {
	if backer.CreatedAt.IsZero() {
		backer.CreatedAt = time.Now().UTC()
	}

	_, err := p.db.WithContext(ctx).
		Model(backer).
		OnConflict("(email) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("roles = EXCLUDED.roles").
		Returning("*").
		Insert()

	if err != nil {
		return persistenceError("upsert backer", err)
	}

	return nil
}

func (p Postgres) GetBacker(ctx context.Context, backerID string) (*model.Backer, error) {
	backer := &model.Backer{}
	err := p.db.WithContext(ctx).Model(backer).Where("id = ?", backerID).Select()
	if err == pg.ErrNoRows {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, persistenceError("get backer", err)
	}

	return backer, nil
}

// RecordPledge inserts a new pledge and increments campaign's raised amount in one transaction.
// Returns false (and changes nothing) if a pledge for the same checkout session already exists.
func (p Postgres) RecordPledge(ctx context.Context, pledge *model.Pledge) (bool, error) {
	now := time.Now().UTC()
	if pledge.CreatedAt.IsZero() {
		pledge.CreatedAt = now
	}
	pledge.UpdatedAt = now

	created := false
	err := p.db.WithContext(ctx).RunInTransaction(func(tx *pg.Tx) error {
		res, err := tx.Model(pledge).
			OnConflict("(gateway_session_id) DO NOTHING").
			Insert()

		if err != nil {
			return persistenceError("insert pledge", err)
		}

		if res.RowsAffected() == 0 {
			return nil
		}

		if err := incrementRaised(tx, pledge.CampaignID, pledge.Amount); err != nil {
			return err
		}

		created = true
		return nil
	})

	if err != nil {
		return false, errors.Wrapf(err, "failed to record pledge for session %s", pledge.GatewaySessionID)
	}

	return created, nil
}

// TransitionPledges moves pending pledges with the given payment reference to status.
// Only pending pledges are touched, so redelivered or late events update nothing.
func (p Postgres) TransitionPledges(ctx context.Context, paymentRef string, status model.PledgeStatus) (int, error) {
	if !status.Terminal() {
		return 0, errors.Errorf("can't transition pledge to %q", status)
	}

	res, err := p.db.WithContext(ctx).
		Model(&model.Pledge{}).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now().UTC()).
		Where("payment_ref = ? AND status = ?", paymentRef, model.PledgePending).
		Update()

	if err != nil {
		return 0, persistenceError("transition pledge", err)
	}

	return res.RowsAffected(), nil
}

func (p Postgres) GetPledge(ctx context.Context, pledgeID string) (*model.Pledge, error) {
	pledge := &model.Pledge{}
	err := p.db.WithContext(ctx).Model(pledge).Where("id = ?", pledgeID).Select()
	if err == pg.ErrNoRows {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, persistenceError("get pledge", err)
	}

	return pledge, nil
}

// GetPledgeByPaymentRef finds the earliest pledge for a payment intent along with its backer and campaign.
func (p Postgres) GetPledgeByPaymentRef(ctx context.Context, paymentRef string) (*model.Pledge, error) {
	db := p.db.WithContext(ctx)

	pledge := &model.Pledge{}
	err := db.Model(pledge).
		Where("payment_ref = ?", paymentRef).
		Order("created_at ASC").
		Limit(1).
		Select()

	if err == pg.ErrNoRows {
		return nil, model.ErrNotFound
	} else if err != nil {
		return nil, persistenceError("get pledge by payment ref", err)
	}

	pledge.Backer = &model.Backer{}
	if err := db.Model(pledge.Backer).Where("id = ?", pledge.BackerID).Select(); err != nil {
		return nil, persistenceError("get pledge backer", err)
	}

	pledge.Campaign = &model.Campaign{}
	if err := db.Model(pledge.Campaign).Where("id = ?", pledge.CampaignID).Select(); err != nil {
		return nil, persistenceError("get pledge campaign", err)
	}

	return pledge, nil
}

func (p Postgres) Close() error {
	return p.db.Close()
}
