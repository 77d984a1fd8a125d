// Package curated holds the built-in list of well-known npm packages offered
// when completing `yarn add`, whatever the project already declares.
//
// The tables are compiled in and never change at run time. Users tailor them
// through the override document read by package custom.
package curated

import "github.com/matzehuels/yarn-completions/pkg/deps"

// Catalog serves the curated tables as a [deps.Catalog].
var Catalog deps.Catalog = catalog{}

type catalog struct{}

func (catalog) Names(f deps.Flavor) deps.Set {
	if f == deps.Dev {
		return DevDependencies()
	}
	return Dependencies()
}

// Dependencies returns a fresh set of the curated runtime packages.
func Dependencies() deps.Set { return deps.NewSet(dependencies...) }

// DevDependencies returns a fresh set of the curated development packages.
func DevDependencies() deps.Set { return deps.NewSet(devDependencies...) }

var dependencies = []string{
	// frameworks
	"react",
	"react-dom",
	"react-router",
	"react-router-dom",
	"next",
	"vue",
	"vue-router",
	"vuex",
	"pinia",
	"nuxt",
	"svelte",
	"preact",
	"@angular/core",
	"@angular/common",
	"@angular/router",
	"solid-js",
	"lit",
	"jquery",

	// state and data
	"redux",
	"react-redux",
	"@reduxjs/toolkit",
	"mobx",
	"zustand",
	"rxjs",
	"immer",
	"@tanstack/react-query",
	"graphql",
	"@apollo/client",

	// http
	"axios",
	"node-fetch",
	"got",
	"ky",
	"superagent",

	// server
	"express",
	"koa",
	"fastify",
	"hapi",
	"@nestjs/core",
	"@nestjs/common",
	"body-parser",
	"cors",
	"helmet",
	"morgan",
	"cookie-parser",
	"socket.io",
	"ws",
	"passport",
	"jsonwebtoken",
	"bcrypt",

	// databases
	"mongoose",
	"sequelize",
	"typeorm",
	"prisma",
	"@prisma/client",
	"knex",
	"pg",
	"mysql2",
	"sqlite3",
	"redis",
	"ioredis",

	// utilities
	"lodash",
	"underscore",
	"ramda",
	"moment",
	"dayjs",
	"date-fns",
	"uuid",
	"nanoid",
	"classnames",
	"clsx",
	"dotenv",
	"chalk",
	"commander",
	"yargs",
	"inquirer",
	"debug",
	"fs-extra",
	"glob",
	"rimraf",
	"semver",
	"zod",
	"yup",
	"joi",
	"ajv",
	"bluebird",
	"core-js",
	"regenerator-runtime",
	"winston",
	"pino",

	// styling
	"styled-components",
	"@emotion/react",
	"@emotion/styled",
	"tailwindcss",
	"bootstrap",
	"@mui/material",
	"antd",
	"d3",
	"chart.js",
	"three",
}

var devDependencies = []string{
	// typescript
	"typescript",
	"ts-node",
	"tsx",
	"@types/node",
	"@types/react",
	"@types/react-dom",
	"@types/jest",
	"@types/express",
	"@types/lodash",

	// bundlers and build
	"webpack",
	"webpack-cli",
	"webpack-dev-server",
	"vite",
	"rollup",
	"parcel",
	"esbuild",
	"@swc/core",
	"babel-loader",
	"@babel/core",
	"@babel/cli",
	"@babel/preset-env",
	"@babel/preset-react",
	"@babel/preset-typescript",
	"css-loader",
	"style-loader",
	"sass",
	"sass-loader",
	"postcss",
	"autoprefixer",
	"html-webpack-plugin",
	"gulp",
	"grunt",

	// testing
	"jest",
	"ts-jest",
	"babel-jest",
	"vitest",
	"mocha",
	"chai",
	"sinon",
	"nyc",
	"ava",
	"cypress",
	"playwright",
	"@playwright/test",
	"@testing-library/react",
	"@testing-library/jest-dom",
	"@testing-library/user-event",
	"supertest",
	"karma",

	// lint and format
	"eslint",
	"eslint-config-prettier",
	"eslint-plugin-react",
	"eslint-plugin-import",
	"@typescript-eslint/parser",
	"@typescript-eslint/eslint-plugin",
	"prettier",
	"stylelint",
	"husky",
	"lint-staged",
	"@commitlint/cli",

	// tooling
	"nodemon",
	"concurrently",
	"cross-env",
	"npm-run-all",
	"rimraf",
	"lerna",
	"turbo",
	"storybook",
}
