package website

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 10 * time.Second
	maxContentSize = 5000
	minTextLength  = 10
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

var ErrEmptyPage = errors.New("website has no readable content")

// Reader extrai título, descrição e o texto principal de uma página
type Reader struct {
	timeout time.Duration
}

func NewReader(timeout time.Duration) *Reader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Reader{timeout: timeout}
}

func (r *Reader) ReadWebsite(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	collector := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.MaxDepth(1),
	)
	collector.SetRequestTimeout(timeout)

	var (
		title       string
		description string
		content     []string
		visitErr    error
	)

	collector.OnHTML("title", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})

	collector.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		description = strings.TrimSpace(e.Attr("content"))
	})

	collector.OnHTML("h1, h2, h3, p, li", func(e *colly.HTMLElement) {
		text := strings.Join(strings.Fields(e.Text), " ")
		if len(text) > minTextLength {
			content = append(content, text)
		}
	})

	collector.OnError(func(resp *colly.Response, err error) {
		visitErr = fmt.Errorf("website: status %d: %w", resp.StatusCode, err)
	})

	if err := collector.Visit(url); err != nil && visitErr == nil {
		visitErr = fmt.Errorf("website: visit %s: %w", url, err)
	}

	if visitErr != nil {
		logrus.WithError(visitErr).WithField("url", url).Warn("website: falha ao ler página")
		return "", visitErr
	}

	if title == "" && description == "" && len(content) == 0 {
		return "", ErrEmptyPage
	}

	fullText := strings.Join(content, " ")
	if len(fullText) > maxContentSize {
		fullText = strings.ToValidUTF8(fullText[:maxContentSize], "")
	}

	return fmt.Sprintf("Title: %s\nDescription: %s\nContent: %s", title, description, fullText), nil
}
