package manifest

// Manifest is the decoded works.json document.
type Manifest struct {
	Works []Work `json:"works"`
}

// Work is one creative-work record. Fields hold the JSON value folded to a
// string; an empty string means the field is missing.
type Work struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	GIFURL     string `json:"gifUrl,omitempty"`
	WebPURL    string `json:"webpUrl,omitempty"`
	UploadDate string `json:"uploadDate"`
	// NonStringURLs lists the URL keys (gifUrl, webpUrl) whose value is
	// present but not a JSON string.
	NonStringURLs []string `json:"-"`
}

// JSON keys of a work record.
const (
	KeyWorks      = "works"
	KeyID         = "id"
	KeyTitle      = "title"
	KeyGIFURL     = "gifUrl"
	KeyWebPURL    = "webpUrl"
	KeyUploadDate = "uploadDate"
)

const (
	// DefaultFile is the manifest file name looked up in the working directory.
	DefaultFile = "works.json"
	// DefaultLocalPrefix marks an image URL as a path inside the images directory.
	DefaultLocalPrefix = "./images/"
	// UnknownTitle is shown in place of a missing title.
	UnknownTitle = "Unknown"
)

// DisplayTitle returns the title, or UnknownTitle when it is missing.
func (w Work) DisplayTitle() string {
	if w.Title == "" {
		return UnknownTitle
	}
	return w.Title
}
