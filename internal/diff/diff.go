// Package diff computes the patches stored as article revisions.
package diff

import (
	"errors"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var ErrPatchFailed = errors.New("patch could not be applied")

var dmp = diffmatchpatch.New()

// FindPatches returns the textual patch that transforms text1 into text2.
func FindPatches(text1, text2 string) string {
	diffs := dmp.DiffMain(text1, text2, false)
	return dmp.PatchToText(dmp.PatchMake(text1, diffs))
}

// Apply applies a patch produced by FindPatches to text.
func Apply(text, patch string) (string, error) {
	patches, err := dmp.PatchFromText(patch)
	if err != nil {
		return "", err
	}

	result, applied := dmp.PatchApply(patches, text)
	for _, ok := range applied {
		if !ok {
			return "", ErrPatchFailed
		}
	}
	return result, nil
}
