package debt

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxNameLength  = 200
	maxEmailLength = 254
	maxPhoneLength = 30
)

// Debtor errors
var (
	ErrInvalidName     = shared.NewDomainError("INVALID_NAME", fmt.Sprintf("Name is required and cannot exceed %d characters", maxNameLength))
	ErrInvalidDocument = shared.NewDomainError("INVALID_DOCUMENT", "Document must have 11 (CPF) or 14 (CNPJ) digits")
	ErrInvalidEmail    = shared.NewDomainError("INVALID_EMAIL", "Email is not valid")
	ErrInvalidPhone    = shared.NewDomainError("INVALID_PHONE", fmt.Sprintf("Phone cannot exceed %d characters", maxPhoneLength))
)

// DocumentType tells a person document from a company document
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

// Debtor is the person or company that owes titles
type Debtor struct {
	shared.BaseAggregateRoot
	Name       string
	SearchName string
	Document   string
	Email      string
	Phone      string
}

// DebtorContact groups the editable fields of a debtor
type DebtorContact struct {
	Name     string
	Document string
	Email    string
	Phone    string
}

func (c DebtorContact) normalize() (DebtorContact, error) {
	c.Name = strings.Join(strings.Fields(c.Name), " ")
	if c.Name == "" || utf8.RuneCountInString(c.Name) > maxNameLength {
		return c, ErrInvalidName
	}
	doc, err := NormalizeDocument(c.Document)
	if err != nil {
		return c, err
	}
	c.Document = doc
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Email != "" && (len(c.Email) > maxEmailLength || strings.Count(c.Email, "@") != 1 || strings.HasPrefix(c.Email, "@") || strings.HasSuffix(c.Email, "@")) {
		return c, ErrInvalidEmail
	}
	c.Phone = strings.TrimSpace(c.Phone)
	if len(c.Phone) > maxPhoneLength {
		return c, ErrInvalidPhone
	}
	return c, nil
}

// NewDebtor creates a new debtor
func NewDebtor(contact DebtorContact, now time.Time) (*Debtor, error) {
	contact, err := contact.normalize()
	if err != nil {
		return nil, err
	}
	d := &Debtor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(now),
	}
	d.apply(contact)
	return d, nil
}

// Update replaces the debtor's contact data
func (d *Debtor) Update(contact DebtorContact, now time.Time) error {
	contact, err := contact.normalize()
	if err != nil {
		return err
	}
	d.apply(contact)
	d.Touch(now)
	d.IncrementVersion()
	return nil
}

func (d *Debtor) apply(c DebtorContact) {
	d.Name = c.Name
	d.SearchName = FoldSearchText(c.Name)
	d.Document = c.Document
	d.Email = c.Email
	d.Phone = c.Phone
}

// DocumentType returns CPF or CNPJ based on the digit count
func (d *Debtor) DocumentType() DocumentType {
	if len(d.Document) == 14 {
		return DocumentTypeCNPJ
	}
	return DocumentTypeCPF
}

// NormalizeDocument keeps the digits of a CPF/CNPJ and checks its length.
// Punctuation such as "123.456.789-09" is accepted.
func NormalizeDocument(document string) (string, error) {
	var b strings.Builder
	for _, r := range document {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '/', unicode.IsSpace(r):
		default:
			return "", ErrInvalidDocument
		}
	}
	digits := b.String()
	if len(digits) != 11 && len(digits) != 14 {
		return "", ErrInvalidDocument
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return "", ErrInvalidDocument
	}
	return digits, nil
}

// FoldSearchText lower-cases and strips accents so "José" matches "jose".
func FoldSearchText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
