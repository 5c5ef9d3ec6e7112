// Package learning implements the logistic SGD classifier trained on sparse rows.
//
// A classifier is built from HyperParameters, starts with zero weights and learns one
// epoch per Fit call. For every row it computes p = sigmoid(w·x + b) and, with
// err = p - y, updates each non-zero feature j as
//
//	w[j] -= rate * (err*x[j] + penalty*w[j])
//	b    -= rate * err
package learning
