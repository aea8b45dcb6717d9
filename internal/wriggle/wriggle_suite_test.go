package wriggle_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSuppressionSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Wriggle Suppression Suite")
}
