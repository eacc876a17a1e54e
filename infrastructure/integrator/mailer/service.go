package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/wneessen/go-mail"
)

const sendTimeout = 30 * time.Second

var (
	ErrNotConfigured   = errors.New("smtp is not configured")
	ErrInvalidOutreach = errors.New("outreach is missing match, creator, offering or brand")
)

// Copywriter redige o email de contato; sem ele o modelo padrão é usado
type Copywriter interface {
	WriteOutreach(ctx context.Context, outreach domain.Outreach) (*domain.OutreachEmail, error)
}

type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

type smtpSender struct {
	client *mail.Client
}

func (s *smtpSender) Send(ctx context.Context, msg *mail.Msg) error {
	return s.client.DialAndSendWithContext(ctx, msg)
}

// NewSender cria o cliente SMTP. Sem usuário configurado a autenticação é desligada.
func NewSender(cfg config.SMTP) (Sender, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	options := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(sendTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("mailer: error creating smtp client: %w", err)
	}

	return &smtpSender{client: client}, nil
}

type Mailer struct {
	sender     Sender
	copywriter Copywriter
	from       string
	fromName   string
}

func New(sender Sender, copywriter Copywriter, cfg config.SMTP) *Mailer {
	return &Mailer{
		sender:     sender,
		copywriter: copywriter,
		from:       cfg.From,
		fromName:   cfg.FromName,
	}
}

// Deliver envia o contato ao criador. Criador sem email não é erro: retorna false.
func (m *Mailer) Deliver(ctx context.Context, outreach domain.Outreach) (bool, error) {
	if outreach.Match == nil || outreach.Creator == nil || outreach.Offering == nil || outreach.Brand == nil {
		return false, ErrInvalidOutreach
	}

	logger := logrus.WithFields(logrus.Fields{
		"match_id":   outreach.Match.ID,
		"creator_id": outreach.Creator.ID,
	})

	if outreach.Creator.Email == nil || strings.TrimSpace(*outreach.Creator.Email) == "" {
		logger.Info("mailer: criador sem email de contato, envio ignorado")
		return false, nil
	}

	if m.sender == nil {
		return false, ErrNotConfigured
	}

	email, err := m.compose(ctx, outreach)
	if err != nil {
		return false, err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return false, fmt.Errorf("mailer: invalid sender address: %w", err)
	}
	if err := msg.To(strings.TrimSpace(*outreach.Creator.Email)); err != nil {
		return false, fmt.Errorf("mailer: invalid creator address: %w", err)
	}
	if outreach.Brand.Email != "" {
		if err := msg.ReplyTo(outreach.Brand.Email); err != nil {
			logger.WithError(err).Warn("mailer: reply-to inválido, seguindo sem ele")
		}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextHTML, email.Body)

	if err := m.sender.Send(ctx, msg); err != nil {
		logger.WithError(err).Error("mailer: falha no envio do email")
		return false, err
	}

	logger.Info("mailer: email de contato enviado")
	return true, nil
}

// compose usa o texto do copywriter quando disponível e cai no modelo padrão em qualquer falha
func (m *Mailer) compose(ctx context.Context, outreach domain.Outreach) (*domain.OutreachEmail, error) {
	if m.copywriter != nil {
		written, err := m.copywriter.WriteOutreach(ctx, outreach)
		if err == nil && written != nil {
			body, err := render(layout, textToHTML(written.Body))
			if err == nil {
				return &domain.OutreachEmail{Subject: written.Subject, Body: body}, nil
			}
		}
		logrus.WithError(err).WithField("match_id", outreach.Match.ID).Warn("mailer: texto gerado indisponível, usando modelo padrão")
	}

	content, err := render(fallback, newFallbackData(outreach))
	if err != nil {
		return nil, err
	}

	body, err := render(layout, template.HTML(content))
	if err != nil {
		return nil, err
	}

	return &domain.OutreachEmail{
		Subject: fmt.Sprintf("Collaboration Opportunity - %s", outreach.Offering.Name),
		Body:    body,
	}, nil
}

func newFallbackData(outreach domain.Outreach) fallbackData {
	categories := "your niche"
	if len(outreach.Creator.Categories) > 0 {
		categories = strings.Join(outreach.Creator.Categories, ", ")
	}

	return fallbackData{
		BrandName:          outreach.Brand.Name,
		BrandEmail:         outreach.Brand.Email,
		CreatorName:        outreach.Creator.Name,
		Categories:         categories,
		ProductName:        outreach.Offering.Name,
		ProductDescription: outreach.Offering.Description,
		FitScore:           outreach.Match.FitScore,
		EngagementRate:     outreach.Creator.EngagementRate,
		Subscribers:        outreach.Creator.SubscriberCount,
		Price:              outreach.Match.PriceEstimate,
	}
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mailer: error rendering %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
