package gateway_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ainlabs/explorer/business/core/gateway"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Fetch(t *testing.T) {
	t.Log("Given the need to proxy content requests to a payment gateway.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the gateway demands payment.", testID)
		{
			challenge := `{"scheme": "exact", "maxAmountRequired": "1000"}`

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("x-payment-required", base64.StdEncoding.EncodeToString([]byte(challenge)))
				w.WriteHeader(http.StatusPaymentRequired)
			}))
			defer srv.Close()

			core := gateway.NewCore(time.Second)

			result, err := core.Fetch(context.Background(), srv.URL, "")
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to fetch: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to fetch.", success, testID)

			if result.Status != http.StatusPaymentRequired {
				t.Errorf("\t%s\tTest %d:\tShould carry status 402, got %d.", failed, testID, result.Status)
			} else {
				t.Logf("\t%s\tTest %d:\tShould carry status 402.", success, testID)
			}

			if string(result.PaymentRequired) != challenge {
				t.Errorf("\t%s\tTest %d:\tShould decode the challenge, got %s.", failed, testID, result.PaymentRequired)
			} else {
				t.Logf("\t%s\tTest %d:\tShould decode the challenge.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen payment is forwarded and the content unlocks.", testID)
		{
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("X-PAYMENT") != "signed-payload" {
					t.Errorf("\t%s\tTest %d:\tShould forward the payment header.", failed, testID)
				}
				w.Header().Set("x-payment-tx-hash", "0xabc")
				w.Header().Set("x-payment-currency", "AIN")
				w.Write([]byte("the full content"))
			}))
			defer srv.Close()

			core := gateway.NewCore(time.Second)

			result, err := core.Fetch(context.Background(), srv.URL, "signed-payload")
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to fetch: %v", failed, testID, err)
			}

			if result.Status != http.StatusOK || result.Content != "the full content" {
				t.Errorf("\t%s\tTest %d:\tShould carry the unlocked content, got %+v.", failed, testID, result)
			} else {
				t.Logf("\t%s\tTest %d:\tShould carry the unlocked content.", success, testID)
			}

			if result.TxHash != "0xabc" || result.Currency != "AIN" {
				t.Errorf("\t%s\tTest %d:\tShould echo the settlement headers, got %+v.", failed, testID, result)
			} else {
				t.Logf("\t%s\tTest %d:\tShould echo the settlement headers.", success, testID)
			}
		}
	}
}
