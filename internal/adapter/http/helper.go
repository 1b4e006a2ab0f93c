package http

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"claims-backoffice/internal/adapter/middleware"
	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// bodyTooLarge matches the errors raised once a request body passes the
// BodyLimit or MaxBytesReader bound.
func bodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || errors.Is(err, echo.ErrStatusRequestEntityTooLarge)
}

// bind decodes the body and runs struct validation. Both failures come back
// as validation errors.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		if bodyTooLarge(err) {
			return err
		}
		return apperr.Invalid("body", "invalid body")
	}
	if err := c.Validate(req); err != nil {
		return &apperr.ValidationError{Fields: ToFieldErrors(err)}
	}
	return nil
}

// bindArray decodes a JSON array body. Field errors are reported as [i].field.
func bindArray[T any](c echo.Context) ([]T, error) {
	if c.Request().ContentLength == 0 {
		return nil, apperr.Invalid("body", "must be a JSON array")
	}
	var items []T
	if err := (&echo.DefaultBinder{}).BindBody(c, &items); err != nil {
		if bodyTooLarge(err) {
			return nil, err
		}
		return nil, apperr.Invalid("body", "must be a JSON array")
	}
	var fields []apperr.FieldError
	for i := range items {
		if err := c.Validate(&items[i]); err != nil {
			for _, f := range ToFieldErrors(err) {
				f.Field = "[" + strconv.Itoa(i) + "]." + f.Field
				fields = append(fields, f)
			}
		}
	}
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// readFile pulls a multipart part fully into memory, bounded by max bytes.
func readFile(c echo.Context, field string, max int64) (storage.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if bodyTooLarge(err) {
			return storage.File{}, err
		}
		return storage.File{}, apperr.Invalid(field, "is required")
	}
	if max > 0 && fh.Size > max {
		return storage.File{}, apperr.Invalid(field, "exceeds "+strconv.FormatInt(max, 10)+" bytes")
	}
	src, err := fh.Open()
	if err != nil {
		return storage.File{}, err
	}
	defer src.Close()
	var r io.Reader = src
	if max > 0 {
		r = io.LimitReader(src, max+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return storage.File{}, err
	}
	if max > 0 && int64(len(body)) > max {
		return storage.File{}, apperr.Invalid(field, "exceeds "+strconv.FormatInt(max, 10)+" bytes")
	}
	ct := fh.Header.Get(echo.HeaderContentType)
	if ct == "" {
		ct = http.DetectContentType(body)
	}
	return storage.File{Name: path.Base(fh.Filename), ContentType: ct, Body: body}, nil
}

// serveObject streams a stored object back with its content type.
func serveObject(c echo.Context, key string, obj *storage.Object) error {
	ct := obj.ContentType
	if ct == "" {
		ct = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+path.Base(key)+`"`)
	return c.Blob(http.StatusOK, ct, obj.Body)
}

func fileKey(c echo.Context) (string, error) {
	k := strings.TrimSpace(c.QueryParam("fileKey"))
	if k == "" {
		return "", apperr.Invalid("fileKey", "is required")
	}
	return k, nil
}

func principal(c echo.Context) (*auth.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, apperr.ErrUnauthenticated
	}
	return p, nil
}

func queryLimit(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return n
}

// parseDate accepts YYYY-MM-DD or RFC3339. Nil and blank mean absent.
func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperr.Invalid(field, "must be YYYY-MM-DD or RFC3339")
}

// joinErrs merges validation errors so the client sees every bad field at once.
func joinErrs(errs ...error) error {
	var fields []apperr.FieldError
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		fields = append(fields, ve.Fields...)
	}
	if len(fields) == 0 {
		return nil
	}
	return &apperr.ValidationError{Fields: fields}
}
