package quotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinettoyage/site-backend/internal/mailer"
	"github.com/cinettoyage/site-backend/internal/observability/metrics"
	"github.com/cinettoyage/site-backend/pkg/logging"
)

// User-facing messages. The site and its customers are French, so the
// API speaks French; logs stay in English for operators.
const (
	msgMissingFields   = "Veuillez remplir tous les champs obligatoires"
	msgInvalidEmail    = "Format d'email invalide"
	msgSuccess         = "Votre demande de devis a été envoyée avec succès !"
	msgSendFailed      = "Une erreur est survenue lors de l'envoi de l'email. Veuillez réessayer plus tard."
	msgProcessingError = "Une erreur est survenue lors du traitement de votre demande"
	msgConfigError     = "Configuration email incomplète"
)

// Handler handles HTTP requests for quote submissions.
type Handler struct {
	sender  mailer.Sender
	to      string
	metrics *metrics.QuoteMetrics
	logger  *logging.Logger
}

// NewHandler creates a new quotes handler. to is the mailbox that
// receives the notification emails.
func NewHandler(sender mailer.Sender, to string, m *metrics.QuoteMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		sender:  sender,
		to:      to,
		metrics: m,
		logger:  logger,
	}
}

// SendResponse is returned on successful dispatch.
type SendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is returned on any failure. Details is set only for
// server-side failures; validation errors carry the message alone.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SendQuote handles POST /api/send-email requests.
//
// Order matters: the configuration check runs before the body is read
// so a misconfigured deployment never reports a client error, and the
// email is only constructed once every required field has passed
// validation.
func (h *Handler) SendQuote(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic while processing quote request", "panic", rec)
			h.metrics.ObserveRequest(metrics.OutcomePanic)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   msgProcessingError,
				Details: fmt.Sprintf("%v", rec),
			})
		}
	}()

	if h.sender == nil || h.to == "" {
		detail := "adresse de destination manquante"
		if h.sender == nil {
			detail = "aucun fournisseur d'envoi configuré"
		}
		h.logger.Error("quote intake misconfigured", "detail", detail)
		h.metrics.ObserveRequest(metrics.OutcomeConfigError)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   msgConfigError,
			Details: detail,
		})
		return
	}

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode quote request", "error", err)
		h.metrics.ObserveRequest(metrics.OutcomeParseError)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   msgProcessingError,
			Details: err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		msg := msgMissingFields
		if errors.Is(err, ErrInvalidEmail) {
			msg = msgInvalidEmail
		}
		h.logger.Info("quote request rejected", "error", err)
		h.metrics.ObserveRequest(metrics.OutcomeRejected)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}

	req.ApplyDefaults()

	msg := mailer.Message{
		To:      h.to,
		Subject: fmt.Sprintf("Nouvelle demande de devis - %s", req.Name),
		HTML:    RenderNotification(req),
	}

	start := time.Now()
	id, err := h.sender.Send(r.Context(), msg)
	h.metrics.ObserveSendLatency(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("failed to send quote notification", "error", err, "to", h.to)
		h.metrics.ObserveRequest(metrics.OutcomeSendFailed)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   msgSendFailed,
			Details: mailer.FriendlyMessage(err),
		})
		return
	}

	h.logger.Info("quote notification sent", "name", req.Name, "service", req.Service, "message_id", id)
	h.metrics.ObserveRequest(metrics.OutcomeSent)
	writeJSON(w, http.StatusOK, SendResponse{
		Success: true,
		Message: msgSuccess,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
