//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the GLSL sources into the SPIR-V binaries the renderer loads.
func (Build) Shaders() error {
	return buildShaders()
}

// Builds the prism binary.
func (Build) Binary() error {
	if err := buildShaders(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "prism", "."), withStream()); err != nil {
		return err
	}
	return nil
}

func buildShaders() error {
	if _, err := executeCmd("glslc", withArgs("shaders/mesh.vert", "-o", "shaders/mesh.vert.spv"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("glslc", withArgs("shaders/mesh.frag", "-o", "shaders/mesh.frag.spv"), withStream()); err != nil {
		return err
	}
	return nil
}
