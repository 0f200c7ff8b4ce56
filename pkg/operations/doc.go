// Package operations implements the four helper operations chefops can
// run on a build agent:
//
//   - setCookbookVersion: patch the version line of a cookbook's
//     metadata file in place.
//   - setupHabitat: materialize a Habitat origin key pair and point the
//     Habitat tooling at it.
//   - setupChef: materialize the knife configuration for a Chef server.
//   - envCookbookVersion: pin a cookbook version in a Chef environment
//     by round-tripping the environment document through knife.
//
// Operations are data transformers over the capability seams in
// pkg/types. Every external command line is handed to the Recorder at
// the moment it is issued, which is the seam the tests (and the CLI run
// report) observe.
package operations
