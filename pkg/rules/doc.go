// Package rules decides which project files are copied into the packaging
// directory.
//
// A file is rejected when its path relative to the project root contains
// any deny-list entry as a plain substring. There is no glob syntax: the
// entry "env" rejects "env/x.py" as well as "environment.py". Keep entries
// specific.
package rules
