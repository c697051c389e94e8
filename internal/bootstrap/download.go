package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/amdwebio/amdweb/version"
)

const userAgent = "amdweb provisioner/%s"

// downloadToFile fetches url into dstFile, retrying transient failures
// up to retries times with exponential backoff. Each attempt rewrites
// the file from scratch.
func downloadToFile(ctx context.Context, url, dstFile string, retries uint64) error {
	operation := func() error {
		return downloadToFileOnce(ctx, url, dstFile)
	}

	expBackOff := &backoff.ExponentialBackOff{
		InitialInterval:     time.Second,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         10 * time.Second,
		MaxElapsedTime:      30 * time.Second,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(expBackOff, retries), ctx)

	err := backoff.RetryNotify(operation, bo, func(err error, duration time.Duration) {
		log.Warnf("download of %s failed, retrying in %v: %v", url, duration, err)
	})
	if err != nil {
		return err
	}

	log.Infof("successfully downloaded %s to %s", url, dstFile)
	return nil
}

func downloadToFileOnce(ctx context.Context, url, dstFile string) (err error) {
	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %q: %w", dstFile, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing file %q: %w", dstFile, cerr)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf(userAgent, version.Version()))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warnf("error closing response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status: %d", resp.StatusCode)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response body to file: %w", err)
	}

	return nil
}
