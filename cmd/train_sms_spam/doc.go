// Package main provides the program that trains the SMS spam classifier.
// It downloads the SMS Spam Collection, vectorizes it into a bag-of-words matrix and
// reports the 10-fold cross-validated accuracy of a logistic SGD classifier.
package main
