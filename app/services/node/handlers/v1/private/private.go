// Package private maintains the group of handlers for operator access.
package private

import (
	"context"
	"errors"
	"net/http"

	"github.com/ardanlabs/ledger/business/sys/validate"
	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of private endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

type fundRequest struct {
	Account string `json:"account" validate:"required,eth_addr"`
	Amount  uint64 `json:"amount" validate:"required,gt=0"`
}

type fundResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// FundAccount adds value to an account outside of any transaction.
func (h Handlers) FundAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req fundRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := validate.Check(req); err != nil {
		return err
	}

	accountID, err := database.ToAccountID(req.Account)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("fund account", "traceid", v.TraceID, "account", accountID, "amount", req.Amount)

	account := h.State.FundAccount(accountID, req.Amount)

	resp := fundResponse{
		Account: accountID.Hex(),
		Balance: account.Balance.Dec(),
		Nonce:   account.Nonce,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SignalMining starts a mining cycle without waiting for the heartbeat.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.State.Worker == nil {
		return errs.NewTrusted(errors.New("mining is not running"), http.StatusServiceUnavailable)
	}

	h.State.Worker.SignalStartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signaled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
