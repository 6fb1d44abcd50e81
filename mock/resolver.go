package mock

import "github.com/fwojciec/confindex"

var _ confindex.ChapterResolver = (*ChapterResolver)(nil)

// ChapterResolver is a mock implementation of confindex.ChapterResolver.
type ChapterResolver struct {
	ResolveChapterFn func(reference string) (confindex.ChapterReference, error)
}

func (r *ChapterResolver) ResolveChapter(reference string) (confindex.ChapterReference, error) {
	return r.ResolveChapterFn(reference)
}
