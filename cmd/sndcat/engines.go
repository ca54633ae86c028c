// SPDX-License-Identifier: EPL-2.0

package main

// The native package registers the libsndfile engine when built with
// -tags sndfile and a placeholder reporting ErrUnavailable otherwise.
import _ "github.com/ik5/sndstream/engine/native"
