// Package trainer provides the cross-validation training loop.
// It slices the dataset per fold, trains a fresh SGD classifier for a fixed number of epochs
// and averages the per-fold train and test accuracies.
package trainer
