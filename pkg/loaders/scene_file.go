package loaders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneParser reads the whitespace-delimited scene format section by section:
// camera, lights, pigments, finishes, primitives.
type SceneParser struct {
	tokens  *tokenReader
	baseDir string
	logger  core.Logger
	scene   *scene.Scene
}

// NewSceneParser creates a parser. Relative texture paths resolve against baseDir.
func NewSceneParser(reader io.Reader, baseDir string, logger core.Logger) *SceneParser {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &SceneParser{
		tokens:  newTokenReader(reader),
		baseDir: baseDir,
		logger:  logger,
	}
}

// ParseScene parses scene content from an io.Reader
func ParseScene(reader io.Reader, baseDir string, logger core.Logger) (*scene.Scene, error) {
	return NewSceneParser(reader, baseDir, logger).Parse()
}

// LoadScene loads and parses a scene file
func LoadScene(filename string, logger core.Logger) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sc, err := ParseScene(file, filepath.Dir(filename), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return sc, nil
}

// Parse consumes the whole scene and validates it
func (p *SceneParser) Parse() (*scene.Scene, error) {
	sections := []struct {
		name  string
		parse func() error
	}{
		{"camera", p.parseCamera},
		{"lights", p.parseLights},
		{"pigments", p.parsePigments},
		{"finishes", p.parseFinishes},
		{"primitives", p.parsePrimitives},
	}
	for _, section := range sections {
		if err := section.parse(); err != nil {
			return nil, fmt.Errorf("%s: %w", section.name, err)
		}
	}

	if err := p.scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return p.scene, nil
}

func (p *SceneParser) parseCamera() error {
	eye, err := p.tokens.vec3("eye")
	if err != nil {
		return err
	}
	target, err := p.tokens.vec3("target")
	if err != nil {
		return err
	}
	up, err := p.tokens.vec3("up vector")
	if err != nil {
		return err
	}
	fov, err := p.tokens.float("field of view")
	if err != nil {
		return err
	}

	p.scene = scene.NewScene(geometry.CameraConfig{
		Center:      eye,
		LookAt:      target,
		Up:          up,
		VFov:        fov,
		AspectRatio: scene.DefaultAspectRatio,
	})
	return nil
}

// parseLights reads the light list. The first entry only supplies the ambient color.
func (p *SceneParser) parseLights() error {
	n, err := p.tokens.count("light count")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		position, err := p.tokens.vec3("light position")
		if err != nil {
			return err
		}
		color, err := p.tokens.vec3("light color")
		if err != nil {
			return err
		}
		attenuation, err := p.tokens.vec3("light attenuation")
		if err != nil {
			return err
		}

		if i == 0 {
			p.scene.AmbientLight = color
			continue
		}
		p.scene.AddPointLight(position, color, [3]float64{attenuation.X, attenuation.Y, attenuation.Z})
	}
	return nil
}

func (p *SceneParser) parsePigments() error {
	n, err := p.tokens.count("pigment count")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		pigment, err := p.parsePigment()
		if err != nil {
			return fmt.Errorf("pigment %d: %w", i, err)
		}
		p.scene.AddPigment(pigment)
	}
	return nil
}

func (p *SceneParser) parsePigment() (material.Pigment, error) {
	kind, err := p.tokens.word("pigment type")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "solid":
		color, err := p.tokens.vec3("color")
		if err != nil {
			return nil, err
		}
		return material.NewSolidPigment(color), nil

	case "checker":
		color1, err := p.tokens.vec3("color")
		if err != nil {
			return nil, err
		}
		color2, err := p.tokens.vec3("second color")
		if err != nil {
			return nil, err
		}
		cubeSize, err := p.tokens.float("cube size")
		if err != nil {
			return nil, err
		}
		return material.NewCheckerPigment(color1, color2, cubeSize), nil

	case "texmap":
		filename, err := p.tokens.word("texture filename")
		if err != nil {
			return nil, err
		}
		var params [8]float64
		for k := range params {
			if params[k], err = p.tokens.float("texture parameter"); err != nil {
				return nil, err
			}
		}
		return material.NewTexturePigment(filename, params, p.loadTexture(filename)), nil

	default:
		return nil, fmt.Errorf("line %d: unknown pigment type %q", p.tokens.line, kind)
	}
}

// loadTexture returns nil when the texture cannot be read; the pigment then renders magenta
func (p *SceneParser) loadTexture(filename string) *material.ImageTexture {
	path := filename
	if !filepath.IsAbs(path) && p.baseDir != "" {
		path = filepath.Join(p.baseDir, path)
	}

	texture, err := LoadTexture(path)
	if err != nil {
		p.logger.Printf("Warning: texture unavailable: %v", err)
		return nil
	}
	p.logger.Printf("Texture loaded: %s (%dx%d)", path, texture.Width, texture.Height)
	return texture
}

func (p *SceneParser) parseFinishes() error {
	n, err := p.tokens.count("finish count")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		var coefficients [7]float64
		for k := range coefficients {
			if coefficients[k], err = p.tokens.float("finish coefficient"); err != nil {
				return fmt.Errorf("finish %d: %w", i, err)
			}
		}
		c := coefficients
		p.scene.AddFinish(material.NewFinish(c[0], c[1], c[2], c[3], c[4], c[5], c[6]))
	}
	return nil
}

func (p *SceneParser) parsePrimitives() error {
	n, err := p.tokens.count("primitive count")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		shape, err := p.parsePrimitive()
		if err != nil {
			return fmt.Errorf("primitive %d: %w", i, err)
		}
		p.scene.Shapes = append(p.scene.Shapes, shape)
	}
	return nil
}

func (p *SceneParser) parsePrimitive() (geometry.Shape, error) {
	pigmentIndex, err := p.tokens.int("pigment index")
	if err != nil {
		return nil, err
	}
	finishIndex, err := p.tokens.int("finish index")
	if err != nil {
		return nil, err
	}
	kind, err := p.tokens.word("primitive type")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "sphere":
		center, err := p.tokens.vec3("sphere center")
		if err != nil {
			return nil, err
		}
		radius, err := p.tokens.float("sphere radius")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(center, radius, pigmentIndex, finishIndex), nil

	case "polyhedron":
		faceCount, err := p.tokens.count("face count")
		if err != nil {
			return nil, err
		}
		poly := geometry.NewPolyhedron(nil, pigmentIndex, finishIndex)
		for k := 0; k < faceCount; k++ {
			var plane [4]float64
			for c := range plane {
				if plane[c], err = p.tokens.float("face coefficient"); err != nil {
					return nil, fmt.Errorf("face %d: %w", k, err)
				}
			}
			poly.AddFace(plane[0], plane[1], plane[2], plane[3])
		}
		return poly, nil

	default:
		return nil, fmt.Errorf("line %d: unknown primitive type %q", p.tokens.line, kind)
	}
}
