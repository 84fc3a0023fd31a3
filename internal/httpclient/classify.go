package httpclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
)

// ClassifyError maps a transport error onto one of the errorwrapper sentinels
// while keeping the original error in the chain.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isTLSError(err):
		return fmt.Errorf("%w: %v", errorwrapper.ErrTLSFailure, err)
	case isTimeout(err):
		return fmt.Errorf("%w: %v", errorwrapper.ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", errorwrapper.ErrNetworkFailure, err)
	}
}

func isTLSError(err error) bool {
	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	var recordErr tls.RecordHeaderError
	if errors.As(err, &certErr) ||
		errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &recordErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "tls:") || strings.Contains(msg, "x509:")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
