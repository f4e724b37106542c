package core

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	gstPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
)

// ValidationError carries per-field messages for a rejected form submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// ValidateBuyerInput checks required fields, trimming whitespace first.
// Returns nil when the input is acceptable.
func ValidateBuyerInput(in BuyerInput) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(in.BuyerName) == "" {
		fields["buyerName"] = "Buyer Name is required"
	}
	if strings.TrimSpace(in.BuyerAddress) == "" {
		fields["buyerAddress"] = "Buyer Address is required"
	}
	if strings.TrimSpace(in.ContactPerson) == "" {
		fields["contactPerson"] = "Contact Person is required"
	}
	if strings.TrimSpace(in.Retailer) == "" {
		fields["retailer"] = "Retailer is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// ValidateVendorInput checks required fields and field formats: email shape,
// 10-digit WhatsApp numbers (the alternative number is optional but must be
// valid when present), IFSC and GST formats.
func ValidateVendorInput(in VendorInput) *ValidationError {
	fields := map[string]string{}

	required := []struct{ name, label, value string }{
		{"vendorName", "Vendor Name", in.VendorName},
		{"address", "Address", in.Address},
		{"gst", "Gst", in.GST},
		{"bankName", "Bank Name", in.BankName},
		{"accNo", "Acc No", in.AccNo},
		{"ifscCode", "Ifsc Code", in.IFSCCode},
		{"jobWorkCategory", "Job Work Category", in.JobWorkCategory},
		{"jobWorkSubCategory", "Job Work Sub Category", in.JobWorkSubCategory},
		{"contactPerson", "Contact Person", in.ContactPerson},
		{"whatsappNo", "Whatsapp No", in.WhatsappNo},
		{"email", "Email", in.Email},
		{"paymentTerms", "Payment Terms", in.PaymentTerms},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields[f.name] = f.label + " is required"
		}
	}

	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		fields["email"] = "Please enter a valid email address"
	}
	if in.WhatsappNo != "" && !phonePattern.MatchString(stripSpaces(in.WhatsappNo)) {
		fields["whatsappNo"] = "Please enter a valid 10-digit WhatsApp number"
	}
	if alt := strings.TrimSpace(in.AltWhatsappNo); alt != "" && !phonePattern.MatchString(stripSpaces(alt)) {
		fields["altWhatsappNo"] = "Please enter a valid 10-digit WhatsApp number"
	}
	if in.IFSCCode != "" && !ifscPattern.MatchString(in.IFSCCode) {
		fields["ifscCode"] = "Please enter a valid IFSC code (e.g., SBIN0000123)"
	}
	if in.GST != "" && !gstPattern.MatchString(in.GST) {
		fields["gst"] = "Please enter a valid GST number"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
