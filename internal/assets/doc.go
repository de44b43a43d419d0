// Package assets provides the stylesheets used by the HTML preview.
//
// Styles are loaded by name through a StyleLoader:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled into the binary (note, plain)
//	    ├── FilesystemLoader  - {basePath}/styles/{name}.css on disk
//	    └── Resolver          - custom directory first, embedded fallback
//
// Names are validated before any lookup, and FilesystemLoader resolves
// symlinks so a style cannot be read from outside its base path.
package assets
