package compile

// implPreamble opens the implementation file: the fixed set of includes, the
// include of the generated header, and then the Validator alias that
// `anyOf`/`oneOf` build arrays of. It is written once, before the runtime
// prelude (spec.md §6, grounded on canner.cc's `process()`).
const implPreamble = `#include <functional>
#include <array>
#include <algorithm>
#include <cstring>
#include <cstdlib>
#include <iostream>

#include "%s"

using Validator = std::function<bool (YAML::Node const&)>;
`

// hdrPreamble opens the header file: include directives for string-view,
// the diagnostic channel, and the YAML node type (spec.md §6).
const hdrPreamble = `#include <string_view>

#include "swoc/Errata.h"
#include "yaml-cpp/yaml.h"

`

// runtimePrelude is the fixed block of hand-written type predicates and the
// deep-equality predicate, written verbatim into the implementation sink
// before any validator body (spec.md §4.13). It names all seven is_*_type
// predicates the walker's type-discrimination check (§4.7) dispatches to.
const runtimePrelude = `namespace {

bool
equal(const YAML::Node &lhs, const YAML::Node &rhs)
{
  if (lhs.Type() != rhs.Type()) {
    return false;
  }
  if (lhs.IsSequence()) {
    if (lhs.size() != rhs.size()) {
      return false;
    }
    for (std::size_t i = 0, n = lhs.size(); i < n; ++i) {
      if (!equal(lhs[i], rhs[i])) {
        return false;
      }
    }
    return true;
  }
  if (lhs.IsMap()) {
    if (lhs.size() != rhs.size()) {
      return false;
    }
    for (const auto &pair : lhs) {
      auto key = pair.first;
      auto value = pair.second;
      if (!rhs[key] || !equal(value, rhs[key])) {
        return false;
      }
    }
    return true;
  }
  return lhs.Scalar() == rhs.Scalar();
}

bool
is_null_type(YAML::Node const& node)
{
  return node.IsNull();
}

bool
is_bool_type(YAML::Node const& node)
{
  if (node.IsScalar()) {
    auto const& value = node.Scalar();
    return 0 == strcasecmp("true", value.c_str()) || 0 == strcasecmp("false", value.c_str());
  }
  return false;
}

bool
is_object_type(YAML::Node const& node)
{
  return node.IsMap();
}

bool
is_array_type(YAML::Node const& node)
{
  return node.IsSequence();
}

bool
is_integer_type(YAML::Node const& node)
{
  if (!node.IsScalar()) {
    return false;
  }
  auto value = node.Scalar();
  std::size_t start = value.find_first_not_of(" \t");
  std::size_t stop = value.find_last_not_of(" \t");
  if (start == std::string::npos) {
    return false;
  }
  value = value.substr(start, stop - start + 1);
  char *end = nullptr;
  std::strtoll(value.c_str(), &end, 10);
  return end != nullptr && *end == '\0' && end != value.c_str();
}

bool
is_number_type(YAML::Node const& node)
{
  if (!node.IsScalar()) {
    return false;
  }
  auto value = node.Scalar();
  std::size_t start = value.find_first_not_of(" \t");
  std::size_t stop = value.find_last_not_of(" \t");
  if (start == std::string::npos) {
    return false;
  }
  value = value.substr(start, stop - start + 1);
  char *end = nullptr;
  std::strtod(value.c_str(), &end);
  return end != nullptr && *end == '\0' && end != value.c_str();
}

bool
is_string_type(YAML::Node const& node)
{
  return node.IsScalar();
}

} // namespace

`
