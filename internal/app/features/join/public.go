// internal/app/features/join/public.go
package join

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	memberstore "github.com/roboticsclub/robohub/internal/app/store/members"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/uploads"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	// maxSubmitBytes caps the whole multipart submission.
	maxSubmitBytes = 16 << 20
	// maxProofBytes caps each individual proof image.
	maxProofBytes = 8 << 20
)

// joinInput defines validation rules for the membership form.
type joinInput struct {
	Name   string `validate:"required,max=200" label:"Name"`
	Email  string `validate:"required,email" label:"Email"`
	Mobile string `validate:"required,min=10,max=15" label:"Mobile number"`
}

type joinFormVM struct {
	viewdata.BaseVM
	Member         models.Member
	CaptchaEnabled bool
	Message        string
	Submitted      bool
}

// ServeForm handles GET /join.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := joinFormVM{
		BaseVM:         viewdata.NewBaseVM(r, "Join the Club", "/"),
		CaptchaEnabled: h.Captcha.Enabled(),
	}
	templates.Render(w, r, "join_form", data)
}

// HandleSubmit handles POST /join.
//
// The two proof uploads happen one after the other; if the document
// write fails afterwards, both just-stored blobs are deleted so no
// orphan files survive a failed application.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	// Two proof images, 16MB total. MaxBytesReader bounds the whole
	// body; ParseMultipartForm's argument only bounds in-memory
	// buffering before spilling to disk.
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBytes)
	if err := r.ParseMultipartForm(maxSubmitBytes); err != nil {
		if err.Error() == "http: request body too large" {
			h.ErrLog.LogBadRequest(w, r, "request too large", err, "Submission is too large. Maximum size is 16 MB.", "/join")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/join")
		return
	}

	m := memberFromForm(r)

	reRender := func(msg string) {
		data := joinFormVM{
			BaseVM:         viewdata.NewBaseVM(r, "Join the Club", "/"),
			Member:         m,
			CaptchaEnabled: h.Captcha.Enabled(),
			Message:        msg,
		}
		templates.Render(w, r, "join_form", data)
	}

	if result := inputval.Validate(joinInput{Name: m.Name, Email: m.Email, Mobile: m.Mobile}); result.HasErrors() {
		reRender(result.First())
		return
	}

	if h.Captcha.Enabled() {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		err := h.Captcha.Verify(ctx, r.FormValue("captcha_token"), r.RemoteAddr)
		cancel()
		if err != nil {
			h.Log.Warn("captcha verification failed", zap.Error(err))
			reRender("Human verification failed. Please try again.")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := memberstore.New(h.DB)

	idPath, ok := h.uploadProof(r, "id_proof", "members/id", &m.IDProofPath, &m.IDProofURL, reRender)
	if !ok {
		return
	}
	payPath, ok := h.uploadProof(r, "payment_proof", "members/payment", &m.PaymentProofPath, &m.PaymentProofURL, reRender)
	if !ok {
		uploads.Cleanup(ctx, h.Storage, h.Log, idPath)
		return
	}

	if _, err := store.Create(ctx, m); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, idPath, payPath)
		h.ErrLog.LogServerError(w, r, "database error creating member", err, "Could not submit your application.", "/join")
		return
	}

	h.Log.Info("membership application received", zap.String("email", m.Email))

	data := joinFormVM{
		BaseVM:    viewdata.NewBaseVM(r, "Application Received", "/"),
		Submitted: true,
	}
	templates.Render(w, r, "join_form", data)
}

// memberFromForm builds a Member from the posted form fields.
func memberFromForm(r *http.Request) models.Member {
	return models.Member{
		Name:             strings.TrimSpace(r.FormValue("name")),
		Email:            strings.TrimSpace(r.FormValue("email")),
		Mobile:           strings.TrimSpace(r.FormValue("mobile")),
		Course:           strings.TrimSpace(r.FormValue("course")),
		EnrollmentNumber: strings.TrimSpace(r.FormValue("enrollment_number")),
		FacultyNumber:    strings.TrimSpace(r.FormValue("faculty_number")),
		DiscordID:        strings.TrimSpace(r.FormValue("discord_id")),
	}
}

// uploadProof stores one required proof image into the given prefix and
// fills the path/URL pair. Returns the storage path and whether the
// caller should continue.
func (h *Handler) uploadProof(r *http.Request, field, prefix string, path, url *string, reRender func(string)) (string, bool) {
	file, header, err := r.FormFile(field)
	if err != nil || header == nil || header.Size == 0 {
		reRender("Both the college ID and the payment screenshot are required.")
		return "", false
	}
	defer file.Close()

	if ok := checkImage(header, reRender); !ok {
		return "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	info, err := uploads.Upload(ctx, h.Storage, prefix, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.Log.Error("proof upload failed", zap.String("field", field), zap.Error(err))
		reRender("Failed to upload your documents. Please try again.")
		return "", false
	}

	*path = info.Path
	*url = h.Storage.URL(info.Path)
	return info.Path, true
}

func checkImage(header *multipart.FileHeader, reRender func(string)) bool {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		reRender("Proof uploads must be images.")
		return false
	}
	if header.Size > maxProofBytes {
		reRender("Each proof image must be 8 MB or smaller.")
		return false
	}
	return true
}
