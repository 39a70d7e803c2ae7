// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

// Render allows tests to run a custom generator list through the
// fan-out machinery.
var Render = render
