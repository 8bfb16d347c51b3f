package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ardanlabs/ledger/business/sys/metrics"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Scrape(t *testing.T) {
	st, err := state.New(state.Config{Genesis: genesis.Genesis{}})
	if err != nil {
		t.Fatalf("Should be able to construct the state: %s", err)
	}
	st.MineNewBlock()
	st.MineNewBlock()

	m := metrics.New(st)
	m.AddRequest(http.MethodGet, http.StatusOK, time.Millisecond)
	m.AddError()

	t.Log("Given the need to expose node metrics.")
	{
		t.Logf("\tTest 0:\tWhen scraping the metrics handler.")
		{
			w := httptest.NewRecorder()
			m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			body, _ := io.ReadAll(w.Body)
			for _, exp := range []string{
				"ledger_chain_height 2",
				"ledger_chain_blocks_sealed_total 2",
				"ledger_mempool_transactions 0",
				`ledger_api_requests_total{method="GET",status="200"} 1`,
				"ledger_api_errors_total 1",
			} {
				if !strings.Contains(string(body), exp) {
					t.Fatalf("\t%s\tTest 0:\tShould find %q in the output.", failed, exp)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould find the node metrics.", success)
		}
	}
}
