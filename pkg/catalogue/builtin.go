// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package catalogue

import (
	"slices"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/platform"
)

const (
	static    = library.Static
	dynamic   = library.Dynamic
	framework = library.Framework
)

// lst keeps the table below readable
func lst(s ...string) []string {
	return s
}

func concat(lists ...[]string) []string {
	return slices.Concat(lists...)
}

// platformLists are the dependency lists that differ between hosts. On
// non-darwin unix G3D needs X11; on darwin GL is a framework.
type platformLists struct {
	g3dX11  []string
	glfwX11 []string
	glfwOSX []string
	appleGL []string
	fwk     library.Type
	ffmpeg  []string
	fmod    []string
	embree  []string
	python  []string
}

func listsFor(p platform.Descriptor) platformLists {
	l := platformLists{
		ffmpeg: lst("FFMPEG-util", "FFMPEG-codec", "FFMPEG-format", "FFMPEG-swscale", "FFMPEG-filter"),
	}

	if p.SupportsFrameworks() {
		l.glfwOSX = lst("IOKit", "CoreVideo", "Cocoa", "AppleGL")
		l.appleGL = lst("AppleGL")
		l.fwk = framework
		l.fmod = lst("FMOD")
	} else {
		l.g3dX11 = lst("X11")
		l.glfwX11 = lst("X11", "Xrandr", "Xi", "Xxf86vm", "Xcursor", "Xinerama", "dl")
		l.fwk = dynamic
	}

	if !p.IsARM() {
		l.embree = lst("embree")
		l.python = lst("python")
	}
	return l
}

// Default is the built-in library catalogue for platform p. Frameworks are
// listed on every platform; they are skipped when planning for hosts that
// cannot link them.
func Default(p platform.Descriptor) []*library.Library {
	pl := listsFor(p)

	g3dAppDepend := concat(lst("G3D-base", "G3D-gfx", "OpenGL", "GLU", "glfw", "assimp", "glew", "nfd"),
		pl.python, pl.ffmpeg, pl.appleGL, pl.g3dX11, pl.fmod, pl.embree)
	// G3D-gfx shares G3D-app's list, minus itself
	g3dGfxDepend := lo.Without(g3dAppDepend, "G3D-gfx")
	glfwDepend := concat(pl.glfwX11, pl.glfwOSX, lst("pthread"))

	n := library.New
	return []*library.Library{
		// name, type, release, debug, release framework, debug framework, headers, symbols, depends on, deploy
		n("python", dynamic, "python36", "python36", "", "", lst("Python.h"), nil, nil, true),
		n("SDL", pl.fwk, "SDL", "SDL", "SDL", "SDL", lst("SDL.h"), lst("SDL_GetMouseState"), lst("OpenGL", "Cocoa", "pthread"), true),
		n("curses", dynamic, "curses", "curses", "", "", lst("curses.h"), nil, nil, false),
		n("zlib", dynamic, "z", "z", "", "", lst("zlib.h"), lst("compress2"), nil, false),
		n("zip", static, "zip", "zip", "", "", lst("zip.h"), lst("zip_close"), lst("zlib"), false),
		n("glut", pl.fwk, "glut", "glut", "GLUT", "GLUT", lst("glut.h"), nil, nil, false),
		n("OpenGL", pl.fwk, "GL", "GL", "OpenGL", "OpenGL", lst("gl.h"), lst("glBegin", "glVertex3"), nil, false),
		n("assimp", static, "assimp", "assimpd", "", "", lst("assimp/Importer.hpp"), nil, nil, false),
		n("glfw", static, "glfw", "glfwd", "", "", lst("glfw3.h"), lst("glfwCreateWindow", "_glfwCreateWindow"), glfwDepend, true),
		n("glew", static, "glew", "glewd", "", "", lst("glew.h"), lst("_glewGetExtension", "glewGetExtension"), nil, true),
		n("nfd", static, "nfd", "nfdd", "", "", lst("nfd.h"), lst("_NFD_OpenDialog"), nil, true),
		n("enet", static, "enet", "enetd", "", "", lst("enet.h"), lst("enet_host_create"), nil, true),
		n("sqlite3", static, "sqlite3", "sqlite3d", "", "", lst("sqlite3.h"), nil, nil, true),
		n("freeimage", static, "freeimage", "freeimaged", "", "", lst("FreeImagePlus.h", "FreeImage.h"), nil, nil, true),
		n("GLU", pl.fwk, "GLU", "GLU", "", "", lst("glu.h"), lst("gluBuild2DMipmaps"), lst("OpenGL"), false),
		n("Webkit", framework, "", "", "Webkit", "Webkit", lst("Webkit.h"), lst("WKWebView", "_OBJC_CLASS_$_WKWebView"), nil, false),
		n("Cocoa", framework, "", "", "Cocoa", "Cocoa", lst("Cocoa.h"), lst("DebugStr"), nil, false),
		n("Carbon", framework, "", "", "Carbon", "Carbon", lst("Carbon.h"), lst("ShowWindow"), nil, false),
		n("AppleGL", framework, "", "", "AGL", "AGL", lst("agl.h"), lst("_aglChoosePixelFormat"), nil, false),
		n("G3D-base", static, "G3D-base", "G3D-based", "", "", lst("G3D-base.h", "TextInput.h"), nil,
			concat(lst("zlib", "freeimage", "zip", "Cocoa", "pthread", "enet", "tbb", "civetweb"), pl.g3dX11), true),
		n("G3D-gfx", static, "G3D-gfx", "G3D-gfxd", "", "", lst("G3D-gfx.h", "RenderDevice.h"), nil, g3dGfxDepend, true),
		n("G3D-app", static, "G3D-app", "G3D-appd", "", "", lst("G3D-app.h", "G3D.h", "RenderDevice.h"), nil, g3dAppDepend, true),
		n("pthread", dynamic, "pthread", "pthread", "", "", lst("pthread.h"), nil, nil, false),
		n("math", dynamic, "m", "m", "", "", nil, nil, nil, false),
		n("QT", dynamic, "qt-mt", "qt-mt", "", "", lst("qobject.h"), nil, nil, true),
		n("CoreVideo", framework, "", "", "CoreVideo", "CoreVideo", nil, nil, nil, false),
		n("QuartzCore", framework, "", "", "QuartzCore", "QuartzCore", lst("QuartzCore.h"), nil, nil, false),
		n("IOKit", framework, "", "", "IOKit", "IOKit", lst("IOHIDKeys.h", "IOKitLib.h", "IOHIDLib.h"), lst("IOMasterPort"), nil, false),
		n("X11", dynamic, "X11", "X11", "", "", lst("x11.h"), lst("XSync", "XFlush"), nil, false),
		n("Xrandr", dynamic, "Xrandr", "Xrandr", "", "", lst("Xrandr.h"), lst("XRRQueryExtension"), lst("X11"), false),
		n("Xi", dynamic, "Xi", "Xi", "", "", lst("XInput2.h"), lst("XIQueryVersion"), lst("X11"), false),
		n("Xcursor", dynamic, "Xcursor", "Xcursor", "", "", lst("Xcursor.h"), nil, lst("X11"), false),
		n("Xxf86vm", dynamic, "Xxf86vm", "Xxf86vm", "", "", nil, nil, nil, false),
		n("Xinerama", dynamic, "Xinerama", "Xinerama", "", "", nil, nil, nil, false),
		n("dl", dynamic, "dl", "dl", "", "", nil, nil, nil, true),
		n("ANN", static, "ANN", "ANN", "", "", lst("ANN.h"), nil, nil, true),
		n("OpenCV", static, "cv", "cv", "", "", lst("cv.h"), nil, lst("OpenCV-Aux", "OpenCV-Core"), true),
		n("OpenCV-Aux", static, "cvaux", "cvaux", "", "", nil, nil, lst("OpenCV-Core"), true),
		n("OpenCV-Core", static, "cxcore", "cxcore", "", "", nil, nil, nil, true),
		n("FMOD", dynamic, "fmod", "fmod", "", "", lst("fmod.hpp", "fmod.h"), nil, lst("FFMPEG-codec", "FFMPEG-util"), true),
		n("mongoose", static, "mongoose", "mongoose", "", "", lst("mongoose.h"), nil, nil, true),
		n("civetweb", static, "civetweb", "civetweb", "", "", lst("civetweb.h"), nil, nil, true),
		n("qrencode", static, "qrencode", "qrencode", "", "", lst("qrencode.h"), lst("_QRcode_encodeData"), nil, true),
		n("irrKlang", dynamic, "irrklang", "irrklang", "", "", lst("irrKlang.h"), lst("createIrrKlangDevice"), nil, true),
		n("ply", static, "ply", "ply", "", "", lst("ply.hpp"), lst("ply::ply_parser::parse"), nil, true),
		n("tbbmalloc", dynamic, "tbbmalloc", "tbbmalloc", "", "", lst("tbb.h"), nil, nil, true),
		n("embree", dynamic, "embree", "embree", "", "", lst("embree.h"), nil, nil, true),
		n("tbb", dynamic, "tbb", "tbb", "", "", lst("tbb.h"), nil, lst("tbbmalloc"), true),
		n("FFMPEG-util", dynamic, "avutil", "avutil", "", "", lst("avutil.h"), lst("av_malloc"), nil, true),
		n("FFMPEG-resample", dynamic, "swresample", "swresample", "", "", nil, nil, nil, true),
		n("FFMPEG-codec", dynamic, "avcodec", "avcodec", "", "", lst("avcodec.h"), lst("avcodec_open"), lst("zlib", "FFMPEG-resample"), true),
		n("FFMPEG-format", dynamic, "avformat", "avformat", "", "", lst("avformat.h"), lst("av_register_all"), lst("FFMPEG-util"), true),
		n("FFMPEG-swscale", dynamic, "swscale", "swscale", "", "", lst("swscale.h"), lst("sws_scale"), lst("FFMPEG-util"), true),
		n("FFMPEG-filter", dynamic, "avfilter", "avfilter", "", "", lst("avfiltergraph.h"), lst("avfilter_graph_create_filter"), lst("FFMPEG-util", "FFMPEG-swscale"), true),
	}
}

// DefaultLinkOrder is the curated edge list for the built-in catalogue. It
// encodes linker-only constraints, e.g. frameworks that declare no
// dependencies of their own.
func DefaultLinkOrder() []depgraph.Edge {
	e := func(parent, child string) depgraph.Edge {
		return depgraph.Edge{Parent: parent, Child: child}
	}
	return []depgraph.Edge{
		e("G3D-app", "G3D-gfx"), e("G3D-gfx", "G3D-base"), e("G3D-base", "Cocoa"), e("Cocoa", "SDL"),
		e("SDL", "OpenGL"), e("GLU", "OpenGL"), e("G3D-gfx", "glew"), e("G3D-app", "GLU"),
		e("G3D-base", "zlib"), e("G3D-base", "zip"), e("G3D-base", "freeimage"), e("Cocoa", "pthread"),
		e("G3D-base", "enet"), e("embree", "tbb"),
		e("Cocoa", "zlib"), e("OpenGL", "pthread"), e("Cocoa", "Carbon"),
		e("FFMPEG-format", "FFMPEG-codec"), e("FFMPEG-codec", "FFMPEG-util"), e("FFMPEG-format", "zlib"),
		e("G3D-app", "FFMPEG-format"), e("glfw", "X11"), e("glfw", "Xrandr"), e("glfw", "Xi"),
		e("glfw", "Xcursor"), e("G3D-base", "X11"), e("G3D-gfx", "glfw"), e("G3D-app", "assimp"),
		e("glfw", "Xxf86vm"),
	}
}

// DefaultMode is curated: the table's own depends-on lists disagree with the
// curated order (SDL lists Cocoa, the curated list puts Cocoa before SDL).
const DefaultMode = depgraph.CuratedOnly
