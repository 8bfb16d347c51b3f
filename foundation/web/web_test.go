package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/foundation/web"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_App(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	app := web.NewApp(shutdown)

	type request struct {
		Name string `json:"name"`
	}

	app.Handle(http.MethodPost, "v1", "/echo/:id", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var req request
		if err := web.Decode(r, &req); err != nil {
			return web.Respond(ctx, w, map[string]string{"error": err.Error()}, http.StatusBadRequest)
		}

		resp := map[string]string{
			"id":      web.Param(r, "id"),
			"name":    req.Name,
			"traceid": web.GetTraceID(ctx),
		}
		return web.Respond(ctx, w, resp, http.StatusOK)
	})

	app.Handle(http.MethodGet, "v1", "/integrity", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.NewShutdownError("integrity issue")
	})

	t.Log("Given the need to route requests through the app.")
	{
		t.Logf("\tTest 0:\tWhen posting a valid document.")
		{
			r := httptest.NewRequest(http.MethodPost, "/v1/echo/42", strings.NewReader(`{"name":"bill"}`))
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tTest 0:\tShould receive a status code of 200: %d", failed, w.Code)
			}

			var got map[string]string
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to decode the response: %v", failed, err)
			}

			if got["id"] != "42" || got["name"] != "bill" || got["traceid"] == "" {
				t.Fatalf("\t%s\tTest 0:\tShould get back the values: %v", failed, got)
			}
			t.Logf("\t%s\tTest 0:\tShould get back the values.", success)
		}

		t.Logf("\tTest 1:\tWhen posting a document with unknown fields.")
		{
			r := httptest.NewRequest(http.MethodPost, "/v1/echo/42", strings.NewReader(`{"age":10}`))
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("\t%s\tTest 1:\tShould receive a status code of 400: %d", failed, w.Code)
			}
			t.Logf("\t%s\tTest 1:\tShould receive a status code of 400.", success)
		}

		t.Logf("\tTest 2:\tWhen a handler reports an integrity issue.")
		{
			r := httptest.NewRequest(http.MethodGet, "/v1/integrity", nil)
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			select {
			case <-shutdown:
			default:
				t.Fatalf("\t%s\tTest 2:\tShould signal a shutdown.", failed)
			}

			if !web.IsShutdown(errors.Join(errors.New("wrapped"), web.NewShutdownError("x"))) {
				t.Fatalf("\t%s\tTest 2:\tShould find a wrapped shutdown error.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould signal a shutdown.", success)
		}
	}
}
