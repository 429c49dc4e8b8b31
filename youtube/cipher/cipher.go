package cipher

import (
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/robertkrimen/otto"
	"github.com/spf13/afero"
	"github.com/ytget/ytinfo/internal/logger"
)

const (
	decipherFuncName = "decipher"
	ncodeFuncName    = "ncode"

	signatureParam        = "s"
	signatureNameParam    = "sp"
	defaultSignatureParam = "signature"
	throttleParam         = "n"

	// DefaultTimeout bounds a single script call.
	DefaultTimeout = 2 * time.Second
)

var errHalt = errors.New("halt")

// Decipherer evaluates a player script once and calls its decipher(sig) function,
// and ncode(n) when the script defines one. Results are cached per input.
// A Decipherer is safe for concurrent use.
type Decipherer struct {
	mu      sync.Mutex
	vm      *otto.Otto
	hasN    bool
	timeout time.Duration
	cache   map[string]string
	log     *logger.ComponentLogger
}

// New compiles script. The script must define a global decipher function.
func New(script string) (*Decipherer, error) {
	vm := otto.New()
	if _, err := vm.Run(script); err != nil {
		return nil, NewError(ErrCodeJSParsingFailed, "failed to run player script", err.Error())
	}

	fn, err := vm.Get(decipherFuncName)
	if err != nil || !fn.IsFunction() {
		return nil, NewError(ErrCodeDecipherUndefined, "player script does not define "+decipherFuncName)
	}
	n, err := vm.Get(ncodeFuncName)
	hasN := err == nil && n.IsFunction()

	return &Decipherer{
		vm:      vm,
		hasN:    hasN,
		timeout: DefaultTimeout,
		cache:   make(map[string]string),
		log:     logger.WithComponent(logger.ComponentCipher),
	}, nil
}

// Load reads the player script at path on fs and compiles it.
func Load(fs afero.Fs, path string) (*Decipherer, error) {
	body, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, NewError(ErrCodePlayerJSNotFound, "failed to read player script", err.Error())
	}
	d, err := New(string(body))
	if err != nil {
		return nil, err
	}
	d.log.Debug("Loaded player script", map[string]interface{}{
		"path":  path,
		"bytes": len(body),
		"ncode": d.hasN,
	})
	return d, nil
}

// WithTimeout overrides the per-call timeout. Non-positive values are ignored.
func (d *Decipherer) WithTimeout(timeout time.Duration) *Decipherer {
	if timeout > 0 {
		d.timeout = timeout
	}
	return d
}

// Decipher turns a scrambled signature into the one the media host accepts.
func (d *Decipherer) Decipher(sig string) (string, error) {
	if strings.TrimSpace(sig) == "" {
		return "", NewError(ErrCodeSignatureInvalid, "empty signature")
	}
	return d.cached(decipherFuncName, sig)
}

// SignURL rewrites raw when it carries a scrambled "s" parameter: the deciphered
// value is stored under the name given by "sp" (default "signature"), and "n" is
// transformed when the script defines ncode. URLs without "s" are returned unchanged.
func (d *Decipherer) SignURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", NewError(ErrCodeURLInvalid, "failed to parse media URL", err.Error())
	}
	query := u.Query()
	sig := query.Get(signatureParam)
	if sig == "" {
		return raw, nil
	}

	plain, err := d.Decipher(sig)
	if err != nil {
		return "", err
	}

	name := query.Get(signatureNameParam)
	if name == "" {
		name = defaultSignatureParam
	}
	query.Del(signatureParam)
	query.Del(signatureNameParam)
	query.Set(name, plain)

	if nval := query.Get(throttleParam); nval != "" && d.hasN {
		if out, err := d.cached(ncodeFuncName, nval); err == nil && out != "" {
			query.Set(throttleParam, out)
		} else if err != nil {
			d.log.Warn("ncode failed, keeping n", map[string]interface{}{"error": err.Error()})
		}
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (d *Decipherer) cached(fn, in string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := fn + "\x00" + in
	if out, ok := d.cache[key]; ok {
		return out, nil
	}
	out, err := d.call(fn, in)
	if err != nil {
		d.log.Warn("Script call failed", map[string]interface{}{
			"function": fn,
			"error":    err.Error(),
		})
		return "", err
	}
	d.cache[key] = out
	return out, nil
}

// call runs fn(in) with d.mu held. A call exceeding the timeout is interrupted.
func (d *Decipherer) call(fn, in string) (out string, err error) {
	interrupt := make(chan func(), 1)
	d.vm.Interrupt = interrupt
	timer := time.AfterFunc(d.timeout, func() {
		interrupt <- func() { panic(errHalt) }
	})
	defer timer.Stop()
	defer func() {
		if caught := recover(); caught != nil {
			if caught == errHalt {
				out, err = "", NewError(ErrCodeSignatureTimeout, fn+" exceeded "+d.timeout.String())
				return
			}
			panic(caught)
		}
	}()

	value, callErr := d.vm.Call(fn, nil, in)
	if callErr != nil {
		return "", NewError(ErrCodeJSExecutionFailed, "failed to call "+fn, callErr.Error())
	}
	if !value.IsString() {
		return "", NewError(ErrCodeSignatureInvalid, fn+" did not return a string")
	}
	result, convErr := value.ToString()
	if convErr != nil || result == "" {
		return "", NewError(ErrCodeSignatureInvalid, fn+" returned an empty value")
	}
	return result, nil
}
