// Package modkit builds modules from shared deps and functional options
package modkit

import "wordlebot/internal/modkit/module"

// Module is the common surface for mountable modules
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
