/*
Package launcher implements the startup dispatcher of the Todo Editor application suite.

The project has two main source packages:
`cmd`: Main applications.
`internal`: Private application and library code.
*/
package launcher
