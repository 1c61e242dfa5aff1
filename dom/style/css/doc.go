/*
Package css provides helpers for interpreting CSS properties of styled nodes.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients (layout, rendering) from the textual
nature of CSS properties. Currently it classifies the `display` property,
which decides the box-generation strategy of the layout engine.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css
