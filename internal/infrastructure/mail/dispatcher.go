package mail

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// Dispatcher sends emails concurrently. A failing or panicking send never affects the others.
type Dispatcher struct {
	mailer  contact.Mailer
	timeout time.Duration
	logger  logger.Logger
}

// NewDispatcher wraps mailer with a per-send timeout
func NewDispatcher(mailer contact.Mailer, timeout time.Duration, logger logger.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Dispatcher{
		mailer:  mailer,
		timeout: timeout,
		logger:  logger,
	}
}

// Send implements contact.Mailer with the dispatcher's timeout and panic recovery
func (d *Dispatcher) Send(ctx context.Context, email *contact.Email) (err error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mailer panicked: %v", r)
		}
	}()
	return d.mailer.Send(ctx, email)
}

// Dispatch sends every email and waits for all of them. The returned slice holds one entry per email.
func (d *Dispatcher) Dispatch(ctx context.Context, emails ...*contact.Email) []error {
	errs := make([]error, len(emails))

	var wg sync.WaitGroup
	for i, email := range emails {
		wg.Add(1)
		go func(i int, email *contact.Email) {
			defer wg.Done()
			if err := d.Send(ctx, email); err != nil {
				d.logger.Error(fmt.Sprintf("failed to send email %q: ", email.Subject), err)
				errs[i] = err
			}
		}(i, email)
	}
	wg.Wait()

	return errs
}
