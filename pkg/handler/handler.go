package handler

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v81"

	"github.com/mxpv/pledgesync/pkg/api"
	"github.com/mxpv/pledgesync/pkg/gateway"
	"github.com/mxpv/pledgesync/pkg/metrics"
	"github.com/mxpv/pledgesync/pkg/model"
	"github.com/mxpv/pledgesync/pkg/stats"
	"github.com/mxpv/pledgesync/pkg/webhook"
)

const (
	maxWebhookSize = 1 << 20
	maxIDLength    = 64
)

type storage interface {
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID string, from, to model.CampaignStatus) error
	UpsertBacker(ctx context.Context, backer *model.Backer) error
	GetPledge(ctx context.Context, pledgeID string) (*model.Pledge, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, event *webhook.Event) error
}

type paymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *gateway.CheckoutRequest) (*stripe.CheckoutSession, error)
	CreateRefund(ctx context.Context, intentID string, amount int64) (*stripe.Refund, error)
	ListRefunds(ctx context.Context, intentID string) ([]*stripe.Refund, error)
}

type ranking interface {
	Top(metric string, limit int) ([]stats.CampaignStat, error)
}

type Opts struct {
	WebhookSecret      string
	SignatureTolerance time.Duration
	Ranking            ranking // Optional, top campaigns are unavailable without it
}

type handler struct {
	storage    storage
	dispatcher dispatcher
	gateway    paymentGateway
	ranking    ranking
	verifier   *webhook.Verifier
}

func New(storage storage, dispatcher dispatcher, gw paymentGateway, opts Opts) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	h := handler{
		storage:    storage,
		dispatcher: dispatcher,
		gateway:    gw,
		ranking:    opts.Ranking,
		verifier:   webhook.NewVerifier(opts.WebhookSecret, opts.SignatureTolerance),
	}

	// Handlers

	r.GET("/api/ping", h.ping)
	r.POST("/api/webhooks/stripe", h.webhook)

	r.POST("/api/campaigns", h.createCampaign)
	r.GET("/api/campaigns/top", h.topCampaigns)
	r.GET("/api/campaigns/:id", h.getCampaign)
	r.POST("/api/campaigns/:id/status", h.updateStatus)
	r.POST("/api/campaigns/:id/checkout", h.checkout)

	r.GET("/api/pledges/:id", h.getPledge)
	r.POST("/api/pledges/:id/refunds", h.refund)
	r.GET("/api/pledges/:id/refunds", h.listRefunds)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}

func (h handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h handler) webhook(c *gin.Context) {
	// Read body to byte array in order to verify signature first
	body, err := ioutil.ReadAll(io.LimitReader(c.Request.Body, maxWebhookSize))
	if err != nil {
		log.WithError(err).Error("failed to read webhook request")
		c.String(http.StatusBadRequest, "Webhook Error: failed to read body")
		return
	}

	// Verify signature
	if err := h.verifier.Verify(body, c.GetHeader(webhook.HeaderSignature)); err != nil {
		metrics.ObserveWebhook("unknown", metrics.OutcomeRejected)

		var cfgErr *webhook.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.WithError(err).Error("can't verify webhook")
			c.String(http.StatusInternalServerError, "Webhook secret not configured")
			return
		}

		log.WithError(err).Warn("rejected webhook")
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	event, err := webhook.Parse(body)
	if err != nil {
		metrics.ObserveWebhook("unknown", metrics.OutcomeRejected)
		log.WithError(err).Warn("failed to parse webhook event")
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	if err := h.dispatcher.Dispatch(c.Request.Context(), event); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"event_id":   event.ID,
			"event_type": event.RawType,
		}).Error("failed to process webhook event")

		// Don't leak internals, the sender retries on any 5xx
		c.String(http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h handler) createCampaign(c *gin.Context) {
	req := &api.CreateCampaignRequest{}
	if err := c.BindJSON(req); err != nil {
		c.JSON(badRequest(err))
		return
	}

	if !req.Goal.IsPositive() {
		c.JSON(badRequest(errors.New("goal must be positive")))
		return
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = model.DefaultCurrency
	}

	campaign := &model.Campaign{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Goal:     req.Goal,
		Currency: currency,
		Status:   model.CampaignDraft,
	}

	if err := h.storage.CreateCampaign(c.Request.Context(), campaign); err != nil {
		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

func (h handler) getCampaign(c *gin.Context) {
	campaign, ok := h.loadCampaign(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h handler) updateStatus(c *gin.Context) {
	req := &api.UpdateStatusRequest{}
	if err := c.BindJSON(req); err != nil {
		c.JSON(badRequest(err))
		return
	}

	campaign, ok := h.loadCampaign(c)
	if !ok {
		return
	}

	if !campaign.Status.CanTransition(req.Status) {
		c.JSON(conflict(errors.Errorf("can't change status from %s to %s", campaign.Status, req.Status)))
		return
	}

	err := h.storage.UpdateCampaignStatus(c.Request.Context(), campaign.ID, campaign.Status, req.Status)
	if errors.Is(err, model.ErrConflict) {
		c.JSON(conflict(err))
		return
	} else if err != nil {
		c.JSON(internalError(err))
		return
	}

	campaign.Status = req.Status
	c.JSON(http.StatusOK, campaign)
}

func (h handler) topCampaigns(c *gin.Context) {
	if h.ranking == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats are disabled"})
		return
	}

	limit := api.DefaultTopLimit
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 || parsed > api.MaxTopLimit {
			c.JSON(badRequest(errors.Errorf("limit must be between 1 and %d", api.MaxTopLimit)))
			return
		}
		limit = parsed
	}

	top, err := h.ranking.Top(model.DefaultStatsMetric, limit)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	if top == nil {
		top = []stats.CampaignStat{}
	}

	c.JSON(http.StatusOK, top)
}

func (h handler) checkout(c *gin.Context) {
	req := &api.CheckoutRequest{}
	if err := c.BindJSON(req); err != nil {
		c.JSON(badRequest(err))
		return
	}

	if !req.Amount.IsPositive() {
		c.JSON(badRequest(errors.New("amount must be positive")))
		return
	}

	campaign, ok := h.loadCampaign(c)
	if !ok {
		return
	}

	if campaign.Status != model.CampaignPublished {
		c.JSON(conflict(errors.Errorf("campaign is %s", campaign.Status)))
		return
	}

	ctx := c.Request.Context()

	backer := &model.Backer{
		ID:    uuid.NewString(),
		Email: strings.ToLower(req.Email),
		Name:  req.Name,
		Roles: []string{"backer"},
	}

	// Existing backers keep their id
	if err := h.storage.UpsertBacker(ctx, backer); err != nil {
		c.JSON(internalError(err))
		return
	}

	session, err := h.gateway.CreateCheckoutSession(ctx, &gateway.CheckoutRequest{
		CampaignID:    campaign.ID,
		CampaignTitle: campaign.Title,
		BackerID:      backer.ID,
		BackerEmail:   backer.Email,
		PledgeTierID:  req.TierID,
		Amount:        model.ToMinorUnits(req.Amount, campaign.Currency),
		Currency:      campaign.Currency,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})

	if err != nil {
		c.JSON(gatewayError(err))
		return
	}

	c.JSON(http.StatusOK, &api.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

func (h handler) getPledge(c *gin.Context) {
	pledge, ok := h.loadPledge(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, pledge)
}

func (h handler) refund(c *gin.Context) {
	req := &api.RefundRequest{}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(badRequest(err))
		return
	}

	pledge, ok := h.loadPledge(c)
	if !ok {
		return
	}

	if pledge.Status != model.PledgeCaptured {
		c.JSON(conflict(errors.Errorf("pledge is %s", pledge.Status)))
		return
	}

	if req.Amount.IsNegative() || req.Amount.GreaterThan(pledge.Amount) {
		c.JSON(badRequest(errors.Errorf("amount must be between 0 and %s", pledge.Amount)))
		return
	}

	refund, err := h.gateway.CreateRefund(c.Request.Context(), pledge.PaymentRef, model.ToMinorUnits(req.Amount, pledge.Currency))
	if err != nil {
		c.JSON(gatewayError(err))
		return
	}

	log.WithFields(log.Fields{
		"pledge_id": pledge.ID,
		"refund_id": refund.ID,
	}).Info("refund created")

	c.JSON(http.StatusOK, toRefund(refund))
}

func (h handler) listRefunds(c *gin.Context) {
	pledge, ok := h.loadPledge(c)
	if !ok {
		return
	}

	list, err := h.gateway.ListRefunds(c.Request.Context(), pledge.PaymentRef)
	if err != nil {
		c.JSON(gatewayError(err))
		return
	}

	refunds := make([]*api.Refund, 0, len(list))
	for _, refund := range list {
		refunds = append(refunds, toRefund(refund))
	}

	c.JSON(http.StatusOK, refunds)
}

func (h handler) loadCampaign(c *gin.Context) (*model.Campaign, bool) {
	id := c.Param("id")
	if id == "" || len(id) > maxIDLength {
		c.JSON(badRequest(errors.New("invalid campaign id")))
		return nil, false
	}

	campaign, err := h.storage.GetCampaign(c.Request.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return nil, false
	} else if err != nil {
		c.JSON(internalError(err))
		return nil, false
	}

	return campaign, true
}

func (h handler) loadPledge(c *gin.Context) (*model.Pledge, bool) {
	id := c.Param("id")
	if id == "" || len(id) > maxIDLength {
		c.JSON(badRequest(errors.New("invalid pledge id")))
		return nil, false
	}

	pledge, err := h.storage.GetPledge(c.Request.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "pledge not found"})
		return nil, false
	} else if err != nil {
		c.JSON(internalError(err))
		return nil, false
	}

	return pledge, true
}

func toRefund(refund *stripe.Refund) *api.Refund {
	return &api.Refund{
		ID:       refund.ID,
		Amount:   model.FromMinorUnits(refund.Amount, string(refund.Currency)),
		Currency: string(refund.Currency),
		Status:   string(refund.Status),
	}
}

func badRequest(err error) (int, interface{}) {
	return http.StatusBadRequest, gin.H{"error": err.Error()}
}

func conflict(err error) (int, interface{}) {
	return http.StatusConflict, gin.H{"error": err.Error()}
}

func gatewayError(err error) (int, interface{}) {
	log.WithError(err).Error("payment gateway error")
	return http.StatusBadGateway, gin.H{"error": "payment gateway error"}
}

func internalError(err error) (int, interface{}) {
	log.WithError(err).Error("server error")
	return http.StatusInternalServerError, gin.H{"error": "internal error"}
}
