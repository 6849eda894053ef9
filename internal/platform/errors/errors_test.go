package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeContract, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if got := ErrorCodeContract.String(); got != "contract" {
		t.Fatalf("String() = %q, want contract", got)
	}
	if got := ErrorCode(500).String(); got != "code(500)" {
		t.Fatalf("String() out of range = %q", got)
	}
}

func TestConstructorsAndAccessors(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	e := Newf(ErrorCodeJSON, "bad json %d", 12)
	if e.Error() != "bad json 12" || CodeOf(e) != ErrorCodeJSON {
		t.Fatalf("Newf = %v (%v)", e, CodeOf(e))
	}

	root := stderrs.New("socket closed")
	w := Wrapf(root, ErrorCodeUnavailable, "fetch day %d", 753)
	if w.Error() != "fetch day 753: socket closed" {
		t.Fatalf("Wrapf render = %q", w.Error())
	}
	if !stderrs.Is(w, root) {
		t.Fatalf("Wrapf lost its cause")
	}

	tagged := WithOp(WithField(w, "day"), "answer.get")
	pe, ok := As(tagged)
	if !ok || pe.Field() != "day" || pe.Op() != "answer.get" || pe.Code() != ErrorCodeUnavailable {
		t.Fatalf("tagged = %+v", pe)
	}
	orig, _ := As(w)
	if orig.Field() != "" || orig.Op() != "" {
		t.Fatalf("WithField/WithOp mutated the original")
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "y") != foreign {
		t.Fatalf("foreign errors should pass through")
	}

	if WrapIf(nil, ErrorCodeUnknown, "x") != nil {
		t.Fatalf("WrapIf(nil) should be nil")
	}
	if !IsCode(WrapIf(root, ErrorCodeConflict, "x"), ErrorCodeConflict) {
		t.Fatalf("WrapIf lost code")
	}
}

func TestSugar(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("day %d", 1), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Forbiddenf("x"), ErrorCodeForbidden},
		{Conflictf("x"), ErrorCodeConflict},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{TooManyf("x"), ErrorCodeTooManyRequests},
		{Contractf("x"), ErrorCodeContract},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.want {
			t.Fatalf("CodeOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestWireAndHTTP(t *testing.T) {
	if (WireFrom(nil) != Wire{}) {
		t.Fatalf("WireFrom(nil) should be zero")
	}
	st, w := HTTP(WithField(New(ErrorCodeValidation, "bad"), "content"))
	if st != http.StatusBadRequest || w.Field != "content" || w.Message != "bad" {
		t.Fatalf("HTTP = %d %+v", st, w)
	}
	st, w = HTTP(fmt.Errorf("boom"))
	if st != http.StatusInternalServerError || w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("HTTP foreign = %d %+v", st, w)
	}
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", st)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) {
		t.Fatalf("nil should not be retryable")
	}
	if !Retryable(Unavailablef("x")) || !Retryable(fmt.Errorf("wrapped: %w", TooManyf("y"))) {
		t.Fatalf("unavailable/too-many should be retryable")
	}
	if Retryable(NotFoundf("x")) || Retryable(stderrs.New("plain")) {
		t.Fatalf("not found and foreign errors should not be retryable")
	}
}
