package render

import (
	"fmt"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

// composeLetter builds the alternate root view. It reuses the CV header
// (name, title, contact, optional photo) but never a QR placeholder, and
// emits no CV section at all.
func composeLetter(doc model.Document, style Style, opts Options) *Layout {
	pi := doc.PersonalInfo
	cl := doc.CoverLetter

	header := Header{
		Name:    pi.FullName,
		Title:   pi.Title,
		Email:   pi.Email,
		Phone:   pi.Phone,
		Address: pi.Address,
		Photo:   pi.Photo,
	}

	return &Layout{
		Kind:    KindCoverLetter,
		Variant: doc.Template.Normalize(),
		Style:   style,
		Header:  header,
		Letter: &Letter{
			Date:           opts.now().Format("2 January 2006"),
			RecipientName:  cl.RecipientName,
			RecipientTitle: cl.RecipientTitle,
			CompanyName:    cl.CompanyName,
			CompanyAddress: cl.CompanyAddress,
			Salutation:     fmt.Sprintf("Dear %s,", cl.RecipientName),
			Body:           cl.Body,
			SignOff:        "Sincerely,",
			Signature:      pi.FullName,
		},
	}
}
