package model

import "fmt"

// SignSubmission is the body of the sign call.
type SignSubmission struct {
	SignatureImageBase64   string `json:"signature_image_base64"`
	ConsentText            string `json:"consent_text"`
	SignerNameConfirmation string `json:"signer_name_confirmation"`
}

// SignResult is returned exactly once by the server on a successful signing.
type SignResult struct {
	ConfirmationID string `json:"confirmation_id"`
	SignedAt       string `json:"signed_at"`
	SignerName     string `json:"signer_name"`
	NDAName        string `json:"nda_name"`
}

// DeclineSubmission carries the optional decline reason. An empty reason is
// valid; a cancelled prompt never produces a submission at all.
type DeclineSubmission struct {
	Reason string `json:"reason"`
}

// ConsentStatement builds the fixed consent sentence submitted alongside the
// signature. The wording is part of the protocol and must not drift.
func ConsentStatement(signerName, ndaName, ndaVersion string) string {
	return fmt.Sprintf(`I, %s, acknowledge that I have read and agree to "%s" (v%s).`, signerName, ndaName, ndaVersion)
}
