// Package session drives one signing attempt from token load to its
// terminal outcome. The controller owns the phase and the signature pad;
// the UI renders whatever phase is current and feeds events back in.
package session

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/ndalink/ndasign/internal/model"
	"github.com/ndalink/ndasign/internal/portal"
	"github.com/ndalink/ndasign/internal/signature"
	"github.com/ndalink/ndasign/internal/storage"
)

// DeclinedMessage is shown on the dead screen after the signer declines.
const DeclinedMessage = "You have declined this NDA. The sender has been notified."

// Controller is the signing-portal state machine for a single token.
// Mutators are called from the UI event loop; network work runs in
// goroutines that re-enter under the mutex and check for teardown before
// touching state. Once a terminal phase is reached no transition leaves it.
type Controller struct {
	mu sync.Mutex

	client     *portal.Client
	audit      *storage.AuditLogger
	token      string
	invalidate func()

	ctx    context.Context
	cancel context.CancelFunc

	phase   Phase
	session *model.SigningSession
	pad     *signature.Pad

	hasRead bool
	canSign bool

	progress     int
	loadStarted  bool
	markInFlight bool
	submitting   bool
	notice       string
}

// New builds a controller in the Loading phase. audit and invalidate may be
// nil. Call Load once to start, Close on teardown.
func New(client *portal.Client, audit *storage.AuditLogger, token string, invalidate func()) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		client:     client,
		audit:      audit,
		token:      token,
		invalidate: invalidate,
		ctx:        ctx,
		cancel:     cancel,
		phase:      Loading{},
	}
}

// Load fetches the session exactly once. A failed load is terminal: the
// links are single-use and security-sensitive, so the client never retries
// against a possibly consumed token.
func (c *Controller) Load() {
	c.mu.Lock()
	if _, ok := c.phase.(Loading); !ok || c.loadStarted {
		c.mu.Unlock()
		return
	}
	// Marked before the lock is released so back-to-back calls cannot both
	// spend the single-use token.
	c.loadStarted = true
	c.mu.Unlock()

	go func() {
		sess, err := c.client.LoadSession(c.ctx, c.token)
		if err == nil {
			err = sess.Validate()
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed() {
			return
		}

		if err != nil {
			code := portal.ErrCode(err)
			log.Printf("DEBUG: session load failed code=%s: %v", code, err)
			c.phase = Dead{Code: code, Message: portal.ErrMessage(err)}
			c.logAudit(storage.StatusDeadLink, err.Error(), "")
		} else {
			c.session = sess
			c.hasRead = sess.Read()
			c.canSign = sess.Signable()
			c.phase = View{}
		}
		c.redraw()
	}()
}

// ObserveScroll feeds the current read percentage from the document
// viewport. Crossing the threshold fires the mark-read call; the in-flight
// guard is set before the request is issued so rapid scroll events never
// produce overlapping calls. A failed call clears the guard and the next
// qualifying event retries.
func (c *Controller) ObserveScroll(pct int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.phase.(View); !ok {
		return
	}
	c.progress = pct

	if pct < ReadThreshold || c.hasRead || c.markInFlight {
		return
	}
	c.markInFlight = true

	go func() {
		err := c.client.MarkRead(c.ctx, c.token)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed() {
			return
		}
		c.markInFlight = false
		if err != nil {
			// Server ack is authoritative; the flags stay false and the
			// tracker retries on the next qualifying scroll.
			log.Printf("DEBUG: mark read failed: %v", err)
			return
		}
		c.hasRead = true
		c.canSign = true
		c.redraw()
	}()
}

// Proceed moves View -> Sign, handing out a fresh blank pad. Blocked with
// an inline notice while the read gate is still closed.
func (c *Controller) Proceed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.phase.(View); !ok || c.submitting {
		return
	}
	if !c.canSign {
		c.notice = "Please read the entire NDA first."
		return
	}
	c.pad = signature.NewPad()
	c.notice = ""
	c.phase = Sign{}
}

// Back returns Sign -> View without submitting. The drawn signature is
// discarded; re-entering Sign starts from a blank surface.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.phase.(Sign); !ok || c.submitting {
		return
	}
	c.pad = nil
	c.notice = ""
	c.phase = View{}
}

// SubmitSign validates the consent preconditions, exports the signature and
// submits. Success is terminal. A NOT_READ rejection drops back to View
// with the server's message (the server's read gate outranks the cached
// canSign); any other failure stays in Sign so the signer can retry with
// the form state intact.
func (c *Controller) SubmitSign(nameConfirm string, consent bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.phase.(Sign); !ok || c.submitting {
		return
	}

	nameConfirm = strings.TrimSpace(nameConfirm)
	if !consent || nameConfirm == "" {
		c.notice = "Please type your full name and confirm consent."
		return
	}

	image, err := c.pad.Export()
	if err != nil {
		c.notice = "Could not capture your signature. Please try again."
		return
	}
	sub := model.SignSubmission{
		SignatureImageBase64:   image,
		ConsentText:            model.ConsentStatement(nameConfirm, c.session.NDAName, c.session.NDAVersion),
		SignerNameConfirmation: nameConfirm,
	}

	c.submitting = true
	c.notice = ""

	go func() {
		result, err := c.client.Sign(c.ctx, c.token, sub)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed() {
			return
		}
		c.submitting = false

		switch {
		case err == nil:
			c.phase = Done{Result: *result}
			c.pad = nil
			c.logAudit(storage.StatusSigned, "", result.ConfirmationID)
		case portal.IsCode(err, portal.CodeNotRead):
			c.phase = View{}
			c.pad = nil
			c.notice = portal.ErrMessage(err)
		default:
			c.notice = portal.ErrMessage(err)
			c.logAudit(storage.StatusSignFailed, err.Error(), "")
		}
		c.redraw()
	}()
}

// Decline submits the refusal and lands in Dead regardless of the network
// outcome, but only after the request completes so the transition never
// races the call. The caller is responsible for the reason prompt; a
// cancelled prompt must not reach here at all. An empty reason is valid.
func (c *Controller) Decline(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.phase.(View); !ok || c.submitting {
		return
	}
	c.submitting = true

	go func() {
		err := c.client.Decline(c.ctx, c.token, reason)
		if err != nil {
			log.Printf("DEBUG: decline submit failed: %v", err)
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed() {
			return
		}
		c.submitting = false
		c.phase = Dead{Code: portal.CodeDeclined, Message: DeclinedMessage}
		errText := ""
		if err != nil {
			errText = err.Error()
		}
		c.logAudit(storage.StatusDeclined, errText, "")
		c.redraw()
	}()
}

// Close tears the controller down. In-flight requests are cancelled and
// their callbacks drop their results instead of mutating a dead controller.
func (c *Controller) Close() {
	c.cancel()
}

func (c *Controller) closed() bool {
	return c.ctx.Err() != nil
}

func (c *Controller) redraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

func (c *Controller) logAudit(status, errText, confirmationID string) {
	if c.audit == nil {
		return
	}
	entry := storage.AuditEntry{
		TokenHint:      storage.TokenHint(c.token),
		Status:         status,
		Error:          errText,
		ConfirmationID: confirmationID,
	}
	if c.session != nil {
		entry.NDAName = c.session.NDAName
		entry.SignerName = c.session.SignerName
	}
	if err := c.audit.Log(entry); err != nil {
		log.Printf("DEBUG: audit log failed: %v", err)
	}
}

// Accessors below are safe from the UI event loop.

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) Session() *model.SigningSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Pad returns the capture surface, valid only while the phase is Sign.
func (c *Controller) Pad() *signature.Pad {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pad
}

func (c *Controller) HasRead() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasRead
}

func (c *Controller) CanSign() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSign
}

// Progress is the last observed read percentage, for the progress bar.
func (c *Controller) Progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Notice is the current inline recoverable message, empty when none.
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Controller) Token() string {
	return c.token
}
