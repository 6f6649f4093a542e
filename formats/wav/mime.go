// SPDX-License-Identifier: EPL-2.0

package wav

import "strings"

var wavMimeTypes = []string{"audio/wav", "audio/x-wav", "audio/wave"}

// IsLikelyWav guesses from a file name and an optional MIME type whether the
// content is a WAV file. It never looks at the content itself.
func IsLikelyWav(name, mimeType string) bool {
	name = strings.ToLower(name)
	if strings.HasSuffix(name, ".wav") || strings.HasSuffix(name, ".wave") {
		return true
	}

	mimeType = strings.ToLower(mimeType)
	for _, m := range wavMimeTypes {
		if strings.Contains(mimeType, m) {
			return true
		}
	}

	return false
}
