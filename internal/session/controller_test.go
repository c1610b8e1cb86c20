package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ndalink/ndasign/internal/model"
	"github.com/ndalink/ndasign/internal/portal"
	"github.com/ndalink/ndasign/internal/signature"
)

func testSession() model.SigningSession {
	return model.SigningSession{
		NDAName:      "Employee NDA",
		NDAVersion:   "2.1",
		NDACategory:  "Employment",
		CompanyName:  "Acme Corp",
		SignerName:   "Jane Doe",
		SignerEmail:  "jane@example.com",
		ContentPlain: "Confidential information must not be disclosed.",
		ExpiresAt:    "2026-12-31T23:59:59Z",
		Status:       "viewed",
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached within deadline")
}

func newController(t *testing.T, handler http.Handler) *Controller {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(portal.NewClient(srv.URL), nil, "tok-0123456789", nil)
	t.Cleanup(c.Close)
	return c
}

func TestLoadSuccess(t *testing.T) {
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/portal/tok-0123456789/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	if c.HasRead() {
		t.Error("HasRead should start false")
	}
	if c.CanSign() {
		t.Error("CanSign should start false")
	}
	if got := c.Session().NDAName; got != "Employee NDA" {
		t.Errorf("NDAName = %q", got)
	}
}

func TestLoadAlreadyRead(t *testing.T) {
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := testSession()
		sess.Status = "read"
		json.NewEncoder(w).Encode(sess)
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	if !c.HasRead() || !c.CanSign() {
		t.Error("status \"read\" must seed both flags")
	}
}

func TestLoadExpired(t *testing.T) {
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "This signing link has expired.",
			"code":  "EXPIRED",
		})
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(Dead); return ok })

	dead := c.Phase().(Dead)
	if dead.Code != portal.CodeExpired {
		t.Errorf("Code = %q, want EXPIRED", dead.Code)
	}
	if dead.Message != "This signing link has expired." {
		t.Errorf("Message = %q", dead.Message)
	}
}

func TestLoadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(portal.NewClient(srv.URL), nil, "tok", nil)
	defer c.Close()

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(Dead); return ok })

	dead := c.Phase().(Dead)
	if dead.Code != portal.CodeNetwork {
		t.Errorf("Code = %q, want NETWORK", dead.Code)
	}
}

func TestLoadRunsOnce(t *testing.T) {
	var loads int32
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&loads, 1)
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })
	c.Load()
	time.Sleep(50 * time.Millisecond)

	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Errorf("load requests = %d, want 1", n)
	}
}

func TestLoadBackToBackFetchesOnce(t *testing.T) {
	var loads int32
	release := make(chan struct{})
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&loads, 1)
		<-release
		json.NewEncoder(w).Encode(testSession())
	}))

	// Both calls land while the first request is still in flight.
	c.Load()
	c.Load()
	close(release)
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Errorf("load requests = %d, want 1", n)
	}
}

func TestMarkReadFiresOnce(t *testing.T) {
	var reads int32
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			atomic.AddInt32(&reads, 1)
			w.WriteHeader(http.StatusOK)
			return
		}
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	for i := 0; i < 20; i++ {
		c.ObserveScroll(100)
	}
	waitFor(t, c.HasRead)
	for i := 0; i < 20; i++ {
		c.ObserveScroll(100)
	}
	time.Sleep(50 * time.Millisecond)

	if n := atomic.LoadInt32(&reads); n != 1 {
		t.Errorf("mark-read requests = %d, want 1", n)
	}
	if !c.CanSign() {
		t.Error("CanSign should be true after mark-read ack")
	}
}

func TestMarkReadBelowThreshold(t *testing.T) {
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			t.Error("mark-read must not fire below the threshold")
		}
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	c.ObserveScroll(94)
	time.Sleep(50 * time.Millisecond)

	if c.HasRead() {
		t.Error("HasRead must stay false below the threshold")
	}
	if got := c.Progress(); got != 94 {
		t.Errorf("Progress = %d, want 94", got)
	}
}

func TestMarkReadRetriesAfterFailure(t *testing.T) {
	var reads int32
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			if atomic.AddInt32(&reads, 1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	c.ObserveScroll(100)
	waitFor(t, func() bool { return atomic.LoadInt32(&reads) == 1 && !c.HasRead() })

	// The guard clears on failure; the next qualifying scroll retries.
	waitFor(t, func() bool {
		c.ObserveScroll(100)
		return c.HasRead()
	})
}

func TestProceedBlockedUntilRead(t *testing.T) {
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	c.Proceed()
	if _, ok := c.Phase().(View); !ok {
		t.Fatal("Proceed must not leave View before the read gate opens")
	}
	if c.Notice() == "" {
		t.Error("blocked Proceed should set a notice")
	}
}

func loadedAndRead(t *testing.T, handler http.HandlerFunc) *Controller {
	t.Helper()
	c := newController(t, handler)
	c.Load()
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })
	c.ObserveScroll(100)
	waitFor(t, c.HasRead)
	return c
}

func readHandler(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET":
			sess := testSession()
			json.NewEncoder(w).Encode(sess)
		case r.URL.Path == "/api/documents/portal/tok-0123456789/read/":
			w.WriteHeader(http.StatusOK)
		case next != nil:
			next(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func TestProceedHandsOutFreshPad(t *testing.T) {
	c := loadedAndRead(t, readHandler(nil))

	c.Proceed()
	if _, ok := c.Phase().(Sign); !ok {
		t.Fatal("Proceed should enter Sign once read")
	}
	pad := c.Pad()
	if pad == nil || !pad.Blank() {
		t.Fatal("Sign must start with a blank pad")
	}

	pad.Begin(signature.Point{X: 10, Y: 10})
	pad.Extend(signature.Point{X: 50, Y: 50})
	pad.End()

	c.Back()
	if _, ok := c.Phase().(View); !ok {
		t.Fatal("Back should return to View")
	}
	if c.Pad() != nil {
		t.Error("Back must discard the pad")
	}

	c.Proceed()
	if !c.Pad().Blank() {
		t.Error("re-entering Sign must start blank again")
	}
}

func TestSubmitSignSuccess(t *testing.T) {
	var got model.SignSubmission
	c := loadedAndRead(t, readHandler(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/portal/tok-0123456789/sign/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.SignResult{
			ConfirmationID: "CONF-123",
			SignedAt:       "2026-08-30T12:00:00Z",
			SignerName:     "Jane Doe",
			NDAName:        "Employee NDA",
		})
	}))

	c.Proceed()
	pad := c.Pad()
	pad.Begin(signature.Point{X: 20, Y: 30})
	pad.Extend(signature.Point{X: 200, Y: 90})
	pad.End()

	c.SubmitSign("Jane Doe", true)
	waitFor(t, func() bool { _, ok := c.Phase().(Done); return ok })

	done := c.Phase().(Done)
	if done.Result.ConfirmationID != "CONF-123" {
		t.Errorf("ConfirmationID = %q", done.Result.ConfirmationID)
	}
	want := `I, Jane Doe, acknowledge that I have read and agree to "Employee NDA" (v2.1).`
	if got.ConsentText != want {
		t.Errorf("ConsentText = %q, want %q", got.ConsentText, want)
	}
	if got.SignerNameConfirmation != "Jane Doe" {
		t.Errorf("SignerNameConfirmation = %q", got.SignerNameConfirmation)
	}
	if len(got.SignatureImageBase64) < len("data:image/png;base64,") {
		t.Error("submission is missing the signature image")
	}

	// Terminal: nothing moves the phase afterwards.
	c.Back()
	c.Proceed()
	if _, ok := c.Phase().(Done); !ok {
		t.Error("Done must be terminal")
	}
}

func TestSubmitSignRequiresConsentAndName(t *testing.T) {
	c := loadedAndRead(t, readHandler(func(w http.ResponseWriter, r *http.Request) {
		t.Error("submission must not reach the server without consent and name")
	}))

	c.Proceed()
	c.SubmitSign("", true)
	c.SubmitSign("   ", true)
	c.SubmitSign("Jane Doe", false)
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Phase().(Sign); !ok {
		t.Fatal("rejected submission should stay in Sign")
	}
	if c.Notice() == "" {
		t.Error("rejected submission should set a notice")
	}
}

func TestSubmitSignNotReadRevertsToView(t *testing.T) {
	c := loadedAndRead(t, readHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "NOT_READ",
			"message": "You must read the document before signing.",
		})
	}))

	c.Proceed()
	c.Pad().Begin(signature.Point{X: 10, Y: 10})
	c.Pad().End()

	c.SubmitSign("Jane Doe", true)
	waitFor(t, func() bool { _, ok := c.Phase().(View); return ok })

	if c.Notice() != "You must read the document before signing." {
		t.Errorf("Notice = %q", c.Notice())
	}
	if c.Pad() != nil {
		t.Error("reverting to View must discard the pad")
	}
	if !c.HasRead() {
		t.Error("the local read flag stays as seeded; only the submission is rejected")
	}
}

func TestSubmitSignServerErrorStaysInSign(t *testing.T) {
	c := loadedAndRead(t, readHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Something went wrong."})
	}))

	c.Proceed()
	c.Pad().Begin(signature.Point{X: 10, Y: 10})
	c.Pad().End()

	c.SubmitSign("Jane Doe", true)
	waitFor(t, func() bool { return c.Notice() == "Something went wrong." })

	if _, ok := c.Phase().(Sign); !ok {
		t.Error("a retryable failure should stay in Sign")
	}
	if c.Submitting() {
		t.Error("Submitting should clear after the response")
	}
}

func TestDecline(t *testing.T) {
	var gotReason string
	c := loadedAndRead(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "GET" {
			json.NewEncoder(w).Encode(testSession())
			return
		}
		switch r.URL.Path {
		case "/api/documents/portal/tok-0123456789/read/":
			w.WriteHeader(http.StatusOK)
		case "/api/documents/portal/tok-0123456789/decline/":
			var sub model.DeclineSubmission
			json.NewDecoder(r.Body).Decode(&sub)
			gotReason = sub.Reason
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	})

	c.Decline("changed my mind")
	waitFor(t, func() bool { _, ok := c.Phase().(Dead); return ok })

	dead := c.Phase().(Dead)
	if dead.Code != portal.CodeDeclined {
		t.Errorf("Code = %q, want DECLINED", dead.Code)
	}
	if dead.Message != DeclinedMessage {
		t.Errorf("Message = %q", dead.Message)
	}
	if gotReason != "changed my mind" {
		t.Errorf("reason = %q", gotReason)
	}
}

func TestDeclineWithEmptyReason(t *testing.T) {
	c := loadedAndRead(t, readHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	c.Decline("")
	waitFor(t, func() bool { _, ok := c.Phase().(Dead); return ok })
}

func TestDeclineEvenWhenRequestFails(t *testing.T) {
	c := loadedAndRead(t, readHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	c.Decline("no thanks")
	waitFor(t, func() bool { _, ok := c.Phase().(Dead); return ok })

	if dead := c.Phase().(Dead); dead.Code != portal.CodeDeclined {
		t.Errorf("Code = %q, want DECLINED", dead.Code)
	}
}

func TestCloseAbandonsInFlightLoad(t *testing.T) {
	release := make(chan struct{})
	c := newController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(testSession())
	}))

	c.Load()
	c.Close()
	close(release)
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Phase().(Loading); !ok {
		t.Error("a closed controller must not transition")
	}
}
