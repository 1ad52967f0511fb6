package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shivangdevina/TRIA-Contact-hub/coordinator"
	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
	"github.com/shivangdevina/TRIA-Contact-hub/export"
	"github.com/shivangdevina/TRIA-Contact-hub/projection"
	"github.com/shivangdevina/TRIA-Contact-hub/validate"
	"github.com/shivangdevina/TRIA-Contact-hub/vcard"
)

type Contacts struct {
	Coordinator  *coordinator.Coordinator
	ErrorHandler func(context.Context, error)
	Now          func() time.Time // export filename clock, defaults to time.Now
}

type ContactModel struct {
	ID ds.ContactID `json:"id" readOnly:"true"`

	Name   string `json:"name"             example:"Sarah Johnson"          maxLength:"100"`
	Email  string `json:"email,omitempty"  example:"sarah.johnson@gmail.com"`
	Phone  string `json:"phone,omitempty"  example:"+1 (555) 123-4567"`
	Avatar string `json:"avatar,omitempty"`
}

func contactModel(c *ds.Contact) ContactModel {
	return ContactModel{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Avatar: c.Avatar,
	}
}

func contactFields(m ContactModel) ds.ContactFields {
	return ds.ContactFields{
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Avatar: m.Avatar,
	}
}

// statusError maps coordinator failures to HTTP status errors: validation
// failures become a 422 with one detail per failing field, unknown IDs a
// 404. Anything else passes through and surfaces as a generic 500.
func statusError(err error) error {
	var verr *coordinator.ValidationError
	if errors.As(err, &verr) {
		details := make([]error, 0, len(verr.Result.Errors))
		for _, field := range []validate.Field{validate.FieldName, validate.FieldEmail, validate.FieldPhone} {
			ferr, ok := verr.Result.Errors[field]
			if ok {
				details = append(details, &huma.ErrorDetail{
					Message:  ferr.Message,
					Location: "body." + string(field),
				})
			}
		}
		return huma.Error422UnprocessableEntity("invalid contact fields", details...)
	}
	if errors.Is(err, ds.ErrObjectNotFound) {
		return huma.Error404NotFound("id not found", err)
	}
	return err
}

func (h *Contacts) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.list, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsListOutput struct {
	Body []ContactModel
}

func (h *Contacts) list(ctx context.Context, input *struct {
	Query string             `query:"q"    doc:"Substring to match against name, email or phone"`
	Sort  projection.SortKey `query:"sort" doc:"Display order" enum:"name-asc,name-desc,email-asc,email-desc,recent" default:"name-asc"`
}) (*ContactsListOutput, error) {
	contacts, err := h.Coordinator.Contacts(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	projected := projection.Project(contacts, input.Query, input.Sort)
	body := make([]ContactModel, 0, len(projected))
	for _, c := range projected {
		body = append(body, contactModel(c))
	}

	return &ContactsListOutput{Body: body}, nil
}

func (h *Contacts) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactsGetOutput struct {
	Body ContactModel
}

func (h *Contacts) get(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to get"`
}) (*ContactsGetOutput, error) {
	contact, err := h.Coordinator.Get(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ContactsGetOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterCreate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/",
		handlerWithErrorHandler(h.create, h.ErrorHandler),
		opDefaultStatus(http.StatusCreated),
		opErrors(http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

type ContactsCreateOutput struct {
	Body ContactModel
}

func (h *Contacts) create(ctx context.Context, input *struct {
	Body ContactModel
}) (*ContactsCreateOutput, error) {
	contact, err := h.Coordinator.Create(ctx, contactFields(input.Body))
	if err != nil {
		return nil, statusError(err)
	}
	return &ContactsCreateOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterUpdate(api huma.API) { // called by [huma.AutoRegister]
	huma.Put(api, "/{id}",
		handlerWithErrorHandler(h.update, h.ErrorHandler),
		opErrors(http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

type ContactsUpdateOutput struct {
	Body ContactModel
}

func (h *Contacts) update(ctx context.Context, input *struct {
	ID   ds.ContactID `path:"id" doc:"ID of the contact to update"`
	Body ContactModel
}) (*ContactsUpdateOutput, error) {
	contact, err := h.Coordinator.Update(ctx, input.ID, contactFields(input.Body))
	if err != nil {
		return nil, statusError(err)
	}
	return &ContactsUpdateOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterDelete(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/{id}",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opDefaultStatus(http.StatusNoContent),
		opErrors(http.StatusInternalServerError),
	)
}

func (h *Contacts) del(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to delete"`
}) (*struct{}, error) {
	return nil, h.Coordinator.Delete(ctx, input.ID)
}

func (h *Contacts) RegisterExport(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/export",
		handlerWithErrorHandler(h.export, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func (h *Contacts) export(ctx context.Context, _ *struct{}) (*ContactsExportOutput, error) {
	contacts, err := h.Coordinator.Contacts(ctx, "")
	if err != nil {
		return nil, err
	}
	data, err := export.Marshal(contacts)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return &ContactsExportOutput{
		ContentType:        "application/json; charset=utf-8",
		ContentDisposition: `attachment; filename="` + export.Filename(now()) + `"`,
		Body:               data,
	}, nil
}

func (h *Contacts) RegisterVCard(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}/vcard",
		handlerWithErrorHandler(h.vcard, h.ErrorHandler),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactsVCardOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (h *Contacts) vcard(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to share"`
}) (*ContactsVCardOutput, error) {
	contact, err := h.Coordinator.Get(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ContactsVCardOutput{
		ContentType: "text/vcard; charset=utf-8",
		Body:        []byte(vcard.Encode(contact)),
	}, nil
}

func (h *Contacts) RegisterQRCode(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}/qrcode",
		handlerWithErrorHandler(h.qrcode, h.ErrorHandler),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactsQRCodeOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (h *Contacts) qrcode(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to share"`
}) (*ContactsQRCodeOutput, error) {
	contact, err := h.Coordinator.Get(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	png, err := vcard.QR(contact)
	if err != nil {
		return nil, err
	}
	return &ContactsQRCodeOutput{ContentType: "image/png", Body: png}, nil
}
