package main

const (
	version = "0.4.0"
	year    = "2022"
	author  = "Philippe Warren"
)

const summary = "Easily do calculations on hours and minutes using the command line"

const helpText = `calct v` + version + `:
` + summary + `

Copyright (C) ` + year + ` ` + author + `
Released under the GNU General Public License v3.0
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it
under certain conditions.
To show the full license, run: ` + "`calct --license`" + `
In interactive mode, run: ` + "`license`" + `

Supports parentheses to control precedence.
Supports operators + and - between two durations.
Supports operators * and / between a duration and a number.
Supports operator @ to create a time range: (a @ b) is the same as (b - a)

Separate hours and minutes using (:) or (h).
Minutes can also be specified as (m) or decimal hours.

Example:
    ::      3h23 @ 5h24 + 2 * (1h - 30m)
        =>  5h24 - 3h23 + 2 * (1h - 30m)
        =>  5h24 - 3h23 + 2 * (30m)
        =>  5h24 - 3h23 + 60m
        =>  2h01 + 60m
        =>  3h01`

const licenseText = `calct: ` + summary + `
Copyright (C) ` + year + `  ` + author + `

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.`

const replCommands = `Interactive commands:
  help, ?            - Show this help message
  sep [separator]    - Show or set the separator for hours and minutes
  license            - Show the license
  clear              - Clear the terminal
  shell <cmd>, !<cmd> - Run a shell command
  exit, quit         - Exit the program
Anything else is evaluated as an expression.`
