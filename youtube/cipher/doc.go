/*
Package cipher implements the optional signature step of URL resolution.

Some media URLs carry a scrambled signature in their "s" query parameter. The
host only serves them once the signature is transformed by the decipher
function of the site's player script. A Decipherer evaluates that script once
in an otto VM and rewrites such URLs:

	d, err := cipher.Load(afero.NewOsFs(), "player.js")
	if err != nil {
		return err
	}
	signed, err := d.SignURL(rawURL)

The script must define a global function decipher(sig). When it also defines
ncode(n), the "n" parameter is transformed as well. Each call is bounded by a
timeout; results are cached per input for the Decipherer's lifetime.

# Error Codes

  - PLAYER_JS_NOT_FOUND: the player script could not be read
  - DECIPHER_UNDEFINED: the script does not define decipher
  - JS_PARSING_FAILED: the script failed to evaluate
  - JS_EXECUTION_FAILED: a script function threw
  - SIGNATURE_INVALID: empty input or a non-string/empty result
  - SIGNATURE_TIMEOUT: a call exceeded the timeout
  - URL_INVALID: the media URL could not be parsed

Every *Error matches errs.ErrCipherFailed with errors.Is.
*/
package cipher
