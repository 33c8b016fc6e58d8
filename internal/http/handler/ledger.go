package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ethsql/internal/core"
	"ethsql/internal/http/handler/middleware"
	"ethsql/internal/http/payload"
	"ethsql/pkg/sqltypes"

	"go.uber.org/zap"
)

const authTokenHeader = "AUTH_TOKEN"

var (
	Authenticate       = "POST /ledger/authenticate"
	GetTransactions    = "GET /ledger/tx"
	GetTransactionsRLP = "GET /ledger/tx/{rlp}"
	GetAllTransactions = "GET /ledger/all"
	GetMyTransactions  = "GET /ledger/my"
	GetSenderSummary   = "GET /ledger/senders/{address}"
)

type LedgerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	ledger           TransactionService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transactionService TransactionService) *LedgerHandler {
	return &LedgerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		ledger:           transactionService,
	}
}

func (h *LedgerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.ledger.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
			Error:   "unexpected error occurred",
		}
		code := errorStatus(err)
		if code == http.StatusUnauthorized {
			resp.Error = err.Error()
		}

		h.respond(w, resp, code, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	txRequest := payload.TransactionsRequest{
		Transactions: values["hash"],
	}
	hashes, err := h.validateHashes(txRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions request received",
		"transactions", txRequest.Transactions,
		"handler", GetTransactions,
		"request_id", requestId)

	h.serveTransactions(w, r, hashes, GetTransactions, requestId)
}

func (h *LedgerHandler) HandleGetTransactionsRLP(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	rlphex := r.PathValue("rlp")
	if rlphex == "" {
		rlphex = strings.TrimPrefix(r.URL.Path, "/ledger/tx/")
	}

	if rlphex == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "rlp parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing rlp parameter",
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	hashes, err := h.ledger.ParseRLP(rlphex)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("parse RLP parameter: %w", err).Error(),
		}, errorStatus(err),
			requestId)
		h.logs.Errorw("failed to parse RLP parameter",
			"error", err,
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	if len(hashes) == 0 {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "rlp list holds no transaction hashes",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("empty rlp list",
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	h.logs.Infow("rlp request parsed successfully",
		"transactions", hashes,
		"handler", GetTransactionsRLP,
		"request_id", requestId)

	h.serveTransactions(w, r, hashes, GetTransactionsRLP, requestId)
}

func (h *LedgerHandler) HandleGetMyTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetMyTransactions, "request_id", requestId)
		return
	}

	h.logs.Infow("user transactions request received", "handler", GetMyTransactions, "request_id", requestId)

	transactions, err := h.ledger.GetUserTransactionsHistory(r.Context(), authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to get user transactions",
			Error:   fmt.Errorf("get user transactions: %w", err).Error(),
		}, errorStatus(err),
			requestId)
		h.logs.Errorw("failed to get user transactions", "error", err, "handler", GetMyTransactions, "request_id", requestId)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetAllTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	allRequest := payload.AllTransactionsRequest{
		MinValue: r.URL.Query().Get("minValue"),
	}
	err := allRequest.Validate()
	var minValue sqltypes.U256
	if err == nil {
		minValue, err = allRequest.Min()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate minValue: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate minValue",
			"error", err,
			"handler", GetAllTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.ledger.GetAllDBTransactions(r.Context(), minValue)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("get all transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get all transactions",
			"error", err,
			"handler", GetAllTransactions,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions retrieved from DB",
		"request_id", requestId,
		"handler", GetAllTransactions,
		"count", len(transactions),
	)

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetSenderSummary(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	senderRequest := payload.SenderRequest{
		Address: r.PathValue("address"),
	}
	if senderRequest.Address == "" {
		senderRequest.Address = strings.TrimPrefix(r.URL.Path, "/ledger/senders/")
	}

	err := senderRequest.Validate()
	var sender sqltypes.Address
	if err == nil {
		sender, err = senderRequest.Sender()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate sender address: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate sender address",
			"error", err,
			"handler", GetSenderSummary,
			"request_id", requestId)
		return
	}

	summary, err := h.ledger.SenderSummary(r.Context(), sender)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not summarise sender",
			Error:   fmt.Errorf("sender summary: %w", err).Error(),
		}, errorStatus(err),
			requestId)
		h.logs.Errorw("failed to summarise sender",
			"error", err,
			"sender", sender,
			"handler", GetSenderSummary,
			"request_id", requestId)
		return
	}

	h.respond(w, summary, http.StatusOK, requestId)
}

func (h *LedgerHandler) validateHashes(txRequest payload.TransactionsRequest) ([]sqltypes.Hash, error) {
	if err := txRequest.Validate(); err != nil {
		return nil, err
	}
	return txRequest.Hashes()
}

// serveTransactions looks up the hashes and, for authenticated callers,
// records the transactions found in the user's history.
func (h *LedgerHandler) serveTransactions(w http.ResponseWriter, r *http.Request, hashes []sqltypes.Hash, route, requestId string) {
	transactions, err := h.ledger.GetTransactions(r.Context(), hashes)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("get transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions retrieved",
		"count", len(transactions),
		"handler", route,
		"request_id", requestId)

	found := make([]sqltypes.Hash, 0, len(transactions))
	for _, tx := range transactions {
		found = append(found, tx.TransactionHash)
	}

	authToken := r.Header.Get(authTokenHeader)
	if authToken != "" && len(found) > 0 {
		go func(ctx context.Context) {
			if err := h.ledger.SaveUserTransactionsHistory(ctx, authToken, found); err != nil {
				h.logs.Errorw("failed to save user history",
					"error", err,
					"handler", route,
					"request_id", requestId)
				return
			}
			h.logs.Infow("user history saved successfully",
				"num_of_transactions", len(found),
				"handler", route,
				"request_id", requestId)
		}(context.WithoutCancel(r.Context()))
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}
