package pdfvalidation

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"
)

// fileHeader builds a *multipart.FileHeader the way Fiber hands it to us
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := req.ParseMultipartForm(64 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestValidatePDFFileRejectsNonPDFExtension(t *testing.T) {
	header := fileHeader(t, "brochure.docx", []byte("%PDF-1.4 not really"))

	result, err := ValidatePDFFile(header, BrochureLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected .docx upload to be rejected")
	}
	if result.Error != "Only PDF files are supported" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
}

func TestValidatePDFFileRejectsMissingHeader(t *testing.T) {
	header := fileHeader(t, "brochure.pdf", []byte("this is not a pdf at all"))

	result, err := ValidatePDFFile(header, BrochureLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected non-PDF bytes to be rejected")
	}
	if result.Error != "Invalid PDF file: missing PDF header" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
}

func TestValidatePDFFileRejectsOversize(t *testing.T) {
	limits := PDFLimits{MaxFileSizeMB: 1, MaxPages: 10, DocumentTypeName: "brochure"}
	big := make([]byte, 2<<20)
	header := fileHeader(t, "brochure.pdf", big)

	result, err := ValidatePDFFile(header, limits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected oversize upload to be rejected")
	}
}

func TestSanitizePDFStripsTrailingGarbage(t *testing.T) {
	content := []byte("%PDF-1.4\nsome objects\n%%EOF\ngarbage appended by proxy")
	cleaned := sanitizePDF(content)
	if !bytes.HasSuffix(cleaned, []byte("%%EOF\n")) {
		t.Errorf("trailing garbage not stripped: %q", cleaned)
	}

	untouched := []byte("not a pdf")
	if !bytes.Equal(sanitizePDF(untouched), untouched) {
		t.Error("non-PDF content should pass through unchanged")
	}
}
