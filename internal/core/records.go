package core

// BuyerRecord is a generated buyer code together with the form fields it was
// created from. Immutable once created; JSON keys match the persisted format.
type BuyerRecord struct {
	Code          string `json:"code"`
	BuyerName     string `json:"buyerName"`
	BuyerAddress  string `json:"buyerAddress"`
	ContactPerson string `json:"contactPerson"`
	Retailer      string `json:"retailer"`
	CreatedAt     string `json:"createdAt"` // ISO 8601
}

// BuyerInput holds the fields required to generate a buyer code.
type BuyerInput struct {
	BuyerName     string `json:"buyerName"`
	BuyerAddress  string `json:"buyerAddress"`
	ContactPerson string `json:"contactPerson"`
	Retailer      string `json:"retailer"`
}

// VendorRecord is a generated vendor code together with its master data.
type VendorRecord struct {
	Code               string `json:"code"`
	VendorName         string `json:"vendorName"`
	Address            string `json:"address"`
	GST                string `json:"gst"`
	BankName           string `json:"bankName"`
	AccNo              string `json:"accNo"`
	IFSCCode           string `json:"ifscCode"`
	JobWorkCategory    string `json:"jobWorkCategory"`
	JobWorkSubCategory string `json:"jobWorkSubCategory"`
	ContactPerson      string `json:"contactPerson"`
	WhatsappNo         string `json:"whatsappNo"`
	AltWhatsappNo      string `json:"altWhatsappNo"`
	Email              string `json:"email"`
	PaymentTerms       string `json:"paymentTerms"`
	CreatedAt          string `json:"createdAt"` // ISO 8601
}

// VendorInput holds the fields required to generate a vendor code.
type VendorInput struct {
	VendorName         string `json:"vendorName"`
	Address            string `json:"address"`
	GST                string `json:"gst"`
	BankName           string `json:"bankName"`
	AccNo              string `json:"accNo"`
	IFSCCode           string `json:"ifscCode"`
	JobWorkCategory    string `json:"jobWorkCategory"`
	JobWorkSubCategory string `json:"jobWorkSubCategory"`
	ContactPerson      string `json:"contactPerson"`
	WhatsappNo         string `json:"whatsappNo"`
	AltWhatsappNo      string `json:"altWhatsappNo"`
	Email              string `json:"email"`
	PaymentTerms       string `json:"paymentTerms"`
}

// textFields returns every textual field exposed to the master sheet's
// free-text search, in display order.
func (v VendorRecord) textFields() []string {
	return []string{
		v.VendorName, v.Code, v.ContactPerson, v.Email,
		v.GST, v.Address, v.PaymentTerms,
	}
}

// JobWorkCategories is the option list for the vendor form's category
// dropdown.
var JobWorkCategories = []string{
	"Greige Yarn", "Recycled Yarn", "Fabric", "DYE", "Knitting", "Quilting",
	"Embroidery", "Cut&Sew", "Artworks&Trims", "Packaging & Product Material",
	"Factory Supplies", "Fiber", "Weaving", "Braided", "Printing",
	"Job Card Service", "Tufting", "Carpet", "Man Power",
}

// JobWorkSubCategories is the option list for the vendor form's sub-category
// dropdown.
var JobWorkSubCategories = []string{
	"Coarse Count UV 2Ne to 20Ne", "Fine Count UV 24Ne to 60Ne",
	"Linen Yarn", "Viscose Yarn", "Cotton Yarn", "Jute Yarn",
	"Polyester Yarn", "Wool Yarn", "Chenille Yarn", "Silk Yarn",
	"Pet Yarn", "Fancy Yarn",
}
