package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	apperr "eduai/internal/errors"
	"eduai/internal/mail"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ContactMessage is a visitor's message to the operators.
type ContactMessage struct {
	Email   string
	Name    string
	Message string
}

// Validate checks presence and the email format.
func (m *ContactMessage) Validate() error {
	m.Email = strings.TrimSpace(m.Email)
	m.Name = strings.TrimSpace(m.Name)
	m.Message = strings.TrimSpace(m.Message)
	if m.Email == "" || m.Name == "" || m.Message == "" {
		return apperr.Validation("이름, 이메일, 메시지는 필수 항목입니다.")
	}
	if !emailPattern.MatchString(m.Email) {
		return apperr.Validation("유효한 이메일 주소를 입력해주세요. (예: email@example.com)")
	}
	return nil
}

// MailConfig addresses outgoing notifications.
type MailConfig struct {
	From         string
	ContactEmail string
	InquiryEmail string
}

// MailService forwards visitor messages to the operators' mailboxes.
type MailService interface {
	SendContact(ctx context.Context, msg ContactMessage) (*mail.Receipt, error)
	SendInquiryAlert(ctx context.Context, msg ContactMessage) (*mail.Receipt, error)
}

type mailService struct {
	sender mail.Sender
	cfg    MailConfig
}

// NewMailService creates a new mail service. A nil sender makes every send
// fail with ErrMailNotConfigured.
func NewMailService(sender mail.Sender, cfg MailConfig) MailService {
	return &mailService{sender: sender, cfg: cfg}
}

func (s *mailService) SendContact(ctx context.Context, msg ContactMessage) (*mail.Receipt, error) {
	return s.send(ctx, msg, s.cfg.ContactEmail, "새로운 문의: ")
}

func (s *mailService) SendInquiryAlert(ctx context.Context, msg ContactMessage) (*mail.Receipt, error) {
	return s.send(ctx, msg, s.cfg.InquiryEmail, "새로운 문의사항: ")
}

func (s *mailService) send(ctx context.Context, msg ContactMessage, to, subjectPrefix string) (*mail.Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if s.sender == nil {
		return nil, apperr.ErrMailNotConfigured
	}

	body, err := mail.Notification{Name: msg.Name, Email: msg.Email, Message: msg.Message}.Render()
	if err != nil {
		return nil, fmt.Errorf("render mail: %w", err)
	}

	receipt, err := s.sender.Send(ctx, mail.Message{
		From:    s.cfg.From,
		To:      []string{to},
		ReplyTo: msg.Email,
		Subject: subjectPrefix + msg.Name,
		HTML:    body,
	})
	if err != nil {
		return nil, apperr.Backend("send mail", err)
	}
	return receipt, nil
}
