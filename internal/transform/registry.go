// Package transform implements the editing operations on gocv Mats and the
// registry that exposes them by name.
package transform

import (
	"fmt"
	"sort"

	"gocv.io/x/gocv"
)

// Operation is a named, parameterised image transformation.
type Operation interface {
	Name() string
	Description() string
	// Parameters describes the arguments for an image of the given size.
	Parameters(width, height int) []ParameterInfo
	// Validate checks argument shape without needing an image.
	Validate(params Params) error
	Apply(input gocv.Mat, params Params) (gocv.Mat, error)
}

var operations = make(map[string]Operation)

func Register(op Operation) {
	operations[op.Name()] = op
}

func Get(name string) (Operation, bool) {
	op, exists := operations[name]
	return op, exists
}

func Apply(name string, input gocv.Mat, params Params) (gocv.Mat, error) {
	op, exists := operations[name]
	if !exists {
		return gocv.NewMat(), fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return op.Apply(input, params)
}

func Validate(name string, params Params) error {
	op, exists := operations[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return op.Validate(params)
}

// Names returns every registered operation name, sorted.
func Names() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the default arguments of an operation for an image size.
func Defaults(op Operation, width, height int) Params {
	params := Params{}
	for _, info := range op.Parameters(width, height) {
		params[info.Name] = info.Default
	}
	return params
}

func init() {
	Register(channelOp{})
	Register(resizeOp{})
	Register(fitOp{})
	Register(borderOp{})
	Register(rectangleOp{})
	Register(blurRegionOp{})
}
