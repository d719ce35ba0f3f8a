// Package normalisers extracts readable text from uploaded pitch documents.
// Each sub-package handles one format; the Registry here picks the
// normaliser for a file by MIME type, detecting it from the file
// extension when the upload does not say.
//
// Normalisers are registered with RegisterDefaults when a session starts.
package normalisers
