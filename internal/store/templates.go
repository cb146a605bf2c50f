package store

import (
	"context"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	apperrors "reviewdesk/internal/errors"
	"reviewdesk/internal/kv"
	"reviewdesk/internal/tagtext"
)

// TemplatesKey is the blob key of the persisted message templates.
const TemplatesKey = "app.templates.v1"

// Channel is a delivery channel for review requests.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Channels lists the channels in display order.
var Channels = []Channel{ChannelSMS, ChannelEmail, ChannelWhatsApp}

// ParseChannel accepts a channel name.
func ParseChannel(s string) (Channel, error) {
	if slices.Contains(Channels, Channel(s)) {
		return Channel(s), nil
	}
	return "", apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("unknown channel %q", s), nil)
}

// Title is the display name.
func (c Channel) Title() string {
	switch c {
	case ChannelSMS:
		return "SMS"
	case ChannelEmail:
		return "Email"
	case ChannelWhatsApp:
		return "WhatsApp"
	}
	return string(c)
}

// DefaultTags are the placeholders offered in every template.
var DefaultTags = []tagtext.Tag{
	{Value: "Company name", Label: "company name"},
	{Value: "Name", Label: "name"},
	{Value: "Your link", Label: "landing link"},
}

const defaultSMS = `Hi [[Name]], thanks for choosing us. We ask you to leave us a review. 

[[Your link]] 
`

const defaultEmail = `
Hi [[Name]],

thank you for choosing to trust us at [[Company name]].

You are important to us and we want to know what you think! Would you like to give us two minutes of your time to write a review?

Reviews allow our business to grow, you'd be giving us a big hand!

[[Your link]]

Thanks!`

const defaultWhatsApp = "Hi [[Name]],\n" +
	"                \n" +
	"thank you for choosing to trust us at [[Company name]].\n" +
	"                \n" +
	"You are important to us and we want to know what you think! Would you like to give us two minutes of your time to write a review?\n" +
	"\n" +
	"Reviews allow our business to grow, you'd be giving us a big hand!\n" +
	"\n" +
	"To leave a review, click the link below, the link is only clickable if we are a saved contact of yours, in case you don't see it clickable, add us to your contacts.\n" +
	"\n" +
	"[[Your link]]\n" +
	"\n" +
	"Thanks!\n"

// Templates holds one serialized template per channel.
type Templates struct {
	SMS      string `json:"sms" yaml:"sms"`
	Email    string `json:"email" yaml:"email"`
	WhatsApp string `json:"whatsapp" yaml:"whatsapp"`
}

// DefaultTemplates returns the stock message texts.
func DefaultTemplates() Templates {
	return Templates{SMS: defaultSMS, Email: defaultEmail, WhatsApp: defaultWhatsApp}
}

// Get returns the template of ch.
func (t Templates) Get(ch Channel) string {
	switch ch {
	case ChannelSMS:
		return t.SMS
	case ChannelEmail:
		return t.Email
	case ChannelWhatsApp:
		return t.WhatsApp
	}
	return ""
}

func (t *Templates) set(ch Channel, v string) {
	switch ch {
	case ChannelSMS:
		t.SMS = v
	case ChannelEmail:
		t.Email = v
	case ChannelWhatsApp:
		t.WhatsApp = v
	}
}

// TemplateStore holds the message templates.
type TemplateStore struct {
	*Store[Templates]
}

// NewTemplateStore loads templates from blobs, falling back to the
// defaults. A nil blobs keeps them in memory.
func NewTemplateStore(ctx context.Context, blobs kv.BlobStore) *TemplateStore {
	var p Persister[Templates]
	if blobs != nil {
		p = NewBlobPersister[Templates](blobs, TemplatesKey)
	}
	return &TemplateStore{Store: Load(ctx, DefaultTemplates(), p, nil)}
}

// SetTemplate replaces the template of ch. Writing the current value again
// is a no-op and does not notify subscribers.
func (s *TemplateStore) SetTemplate(ctx context.Context, ch Channel, value string) error {
	if _, err := ParseChannel(string(ch)); err != nil {
		return err
	}
	if s.Snapshot().Get(ch) == value {
		return nil
	}
	return s.Update(ctx, func(t *Templates) { t.set(ch, value) })
}

// ResetChannel restores the stock text of ch.
func (s *TemplateStore) ResetChannel(ctx context.Context, ch Channel) error {
	return s.SetTemplate(ctx, ch, DefaultTemplates().Get(ch))
}

// templateFile is the YAML document written by Export.
type templateFile struct {
	Version   int               `yaml:"version"`
	Tags      []tagtext.Tag     `yaml:"tags,omitempty"`
	Templates map[string]string `yaml:"templates"`
}

const templateFileVersion = 1

// Export writes every template and the tag set as YAML.
func (s *TemplateStore) Export(w io.Writer, tags []tagtext.Tag) error {
	snap := s.Snapshot()
	f := templateFile{
		Version:   templateFileVersion,
		Tags:      tags,
		Templates: make(map[string]string, len(Channels)),
	}
	for _, ch := range Channels {
		f.Templates[string(ch)] = snap.Get(ch)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, "encode templates", err)
	}
	return enc.Close()
}

// Import reads a document written by Export. Channels absent from the file
// keep their current template; unknown channels are rejected before anything
// changes.
func (s *TemplateStore) Import(ctx context.Context, r io.Reader) error {
	var f templateFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return apperrors.New(apperrors.CodeDecodeFailed, "decode template file", err)
	}
	if f.Version != templateFileVersion {
		return apperrors.New(apperrors.CodeDecodeFailed, fmt.Sprintf("unsupported template file version %d", f.Version), nil)
	}
	updates := make(map[Channel]string, len(f.Templates))
	for name, v := range f.Templates {
		ch, err := ParseChannel(name)
		if err != nil {
			return apperrors.New(apperrors.CodeDecodeFailed, "template file", err)
		}
		updates[ch] = v
	}
	return s.Update(ctx, func(t *Templates) {
		for ch, v := range updates {
			t.set(ch, v)
		}
	})
}
