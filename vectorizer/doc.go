// Package vectorizer turns the tab separated SMS corpus into a bag-of-words sparse matrix.
//
// Each line is "label<TAB>message". Labels are "spam" (0.0) and "ham" (1.0). The message
// is split on runs of whitespace and every token is counted verbatim: no lower casing,
// no stemming, no stop words. Columns are assigned in the order tokens are first seen.
package vectorizer
