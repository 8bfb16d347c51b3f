package events_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/events"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Events(t *testing.T) {
	evts := events.New()

	t.Log("Given the need to fan out events to subscribers.")
	{
		t.Logf("\tTest 0:\tWhen two subscribers are registered.")
		{
			ch1 := evts.Acquire("one")
			ch2 := evts.Acquire("two")
			defer func() {
				evts.Shutdown()
				if _, ok := <-ch2; ok {
					t.Errorf("\t%s\tShould close the channels on shutdown.", failed)
				}
			}()

			evts.Send("block sealed")

			if got := <-ch1; got != "block sealed" {
				t.Fatalf("\t%s\tTest 0:\tShould receive the event on the first channel: %s", failed, got)
			}
			if got := <-ch2; got != "block sealed" {
				t.Fatalf("\t%s\tTest 0:\tShould receive the event on the second channel: %s", failed, got)
			}
			t.Logf("\t%s\tTest 0:\tShould receive the event on both channels.", success)
		}

		t.Logf("\tTest 1:\tWhen releasing subscribers.")
		{
			if err := evts.Release("one"); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to release: %v", failed, err)
			}

			if err := evts.Release("one"); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould not release twice.", failed)
			}

			t.Logf("\t%s\tTest 1:\tShould release the subscribers.", success)
		}
	}
}
