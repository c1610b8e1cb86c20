package model

// SigningSession is the server's view of one signing link, fetched once per
// controller. Everything except HasRead/CanSign is held read-only after load.
type SigningSession struct {
	NDAName      string `json:"nda_name"`
	NDAVersion   string `json:"nda_version"`
	NDACategory  string `json:"nda_category"`
	CompanyName  string `json:"company_name"`
	SignerName   string `json:"signer_name"`
	SignerEmail  string `json:"signer_email"`
	AssignedBy   string `json:"assigned_by,omitempty"`
	Message      string `json:"message,omitempty"`
	ContentHTML  string `json:"content_html,omitempty"`
	ContentPlain string `json:"content_plain,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	Status       string `json:"status,omitempty"`
	HasRead      bool   `json:"has_read"`
	CanSign      bool   `json:"can_sign"`
}

// Read reports whether the server already considers this session read.
// A session with status "read" implies both flags regardless of the booleans.
func (s *SigningSession) Read() bool {
	return s.HasRead || s.Status == "read"
}

// Signable reports whether the server already allows signing.
func (s *SigningSession) Signable() bool {
	return s.CanSign || s.Status == "read"
}
